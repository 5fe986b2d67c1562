package user

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"belleza/internal/auth"
	"belleza/internal/domain"
	apperrors "belleza/internal/errors"

	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type userService struct {
	repo       Repository
	jwtManager *auth.JWTManager
	logger     *zap.Logger
}

func NewService(repo Repository, jwtManager *auth.JWTManager, logger *zap.Logger) Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

func (s *userService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); !ok {
			return nil, err
		}
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("a user with this email already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewInternalError("hashing password", err)
	}

	newUser := domain.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Role:         domain.RoleCustomer,
	}

	id, err := s.repo.Insert(ctx, newUser)
	if err != nil {
		return nil, err
	}
	newUser.ID = id

	s.logger.Info("user registered", zap.Int("userId", id))

	// The storefront logs the new user in right away.
	return s.authResponse(newUser)
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if err := validateLoginRequest(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	found, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}

	if !auth.CheckPassword(found.PasswordHash, req.Password) {
		s.logger.Warn("login failed", zap.Int("userId", found.ID))
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	return s.authResponse(*found)
}

func (s *userService) authResponse(u domain.User) (*AuthResponse, error) {
	token, err := s.jwtManager.GenerateToken(u.ID, u.Role)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("generating token for user %d", u.ID), err)
	}

	return &AuthResponse{
		Token: token,
		User: UserDTO{
			ID:        u.ID,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Role:      u.Role,
		},
	}, nil
}

func validateRegisterRequest(req RegisterRequest) error {
	var details []apperrors.ValidationDetail

	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "email",
			Message: "email must be a valid address",
		})
	}

	if len(req.Password) < 6 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "password",
			Message: "password must be at least 6 characters long",
		})
	}

	if strings.TrimSpace(req.FirstName) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "firstName",
			Message: "firstName is required",
		})
	}

	if strings.TrimSpace(req.LastName) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "lastName",
			Message: "lastName is required",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

func validateLoginRequest(req LoginRequest) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(req.Email) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "email",
			Message: "email is required",
		})
	}

	if req.Password == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}
