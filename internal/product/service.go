package product

import (
	"context"
	"fmt"
	"strings"

	"belleza/internal/domain"
	apperrors "belleza/internal/errors"

	"go.uber.org/zap"
)

type productService struct {
	repo         Repository
	reservations ReservationClearer
	logger       *zap.Logger
}

func NewService(repo Repository, reservations ReservationClearer, logger *zap.Logger) Service {
	return &productService{
		repo:         repo,
		reservations: reservations,
		logger:       logger,
	}
}

func (s *productService) ListActive(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindByStatus(ctx, domain.ProductStatusActive)
}

func (s *productService) ListAll(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindByStatus(ctx,
		domain.ProductStatusActive, domain.ProductStatusArchived, domain.ProductStatusDeleted)
}

func (s *productService) GetByID(ctx context.Context, id int, includeDeleted bool) (*domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Soft-deleted products stay invisible outside the admin surface.
	if p.IsDeleted() && !includeDeleted {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}

	return p, nil
}

func (s *productService) Create(ctx context.Context, req CreateProductRequest) (*domain.Product, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	p := domain.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		ImageURLs:   req.ImageURLs,
		Category:    req.Category,
		Stock:       domain.SafeStock(req.Stock),
		Status:      domain.ProductStatusActive,
	}

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return nil, err
	}

	s.logger.Info("product created", zap.Int("productId", id), zap.String("name", p.Name))

	return s.repo.FindByID(ctx, id)
}

func (s *productService) Update(ctx context.Context, id int, req UpdateProductRequest) (*domain.Product, error) {
	if err := validateUpdateRequest(req); err != nil {
		return nil, err
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.ImageURLs != nil {
		p.ImageURLs = *req.ImageURLs
	}
	if req.Category != nil {
		p.Category = *req.Category
	}

	if err := s.repo.Update(ctx, *p); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

func (s *productService) UpdateStatus(ctx context.Context, id int, status string) error {
	if status != domain.ProductStatusActive && status != domain.ProductStatusArchived {
		return apperrors.NewValidationError("invalid status", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of: active, archived",
		})
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *productService) SoftDelete(ctx context.Context, id int) error {
	return s.repo.UpdateStatus(ctx, id, domain.ProductStatusDeleted)
}

func (s *productService) Restore(ctx context.Context, id int) error {
	return s.repo.UpdateStatus(ctx, id, domain.ProductStatusActive)
}

func (s *productService) PermanentDelete(ctx context.Context, id int) error {
	// Reservations reference the product row; clear them before the row
	// disappears so the registry never holds dangling entries.
	if err := s.reservations.ClearReservations(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("product permanently deleted", zap.Int("productId", id))
	return nil
}

func validateCreateRequest(req CreateProductRequest) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(req.Name) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}

	if req.Price <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "price",
			Message: "price must be greater than zero",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

func validateUpdateRequest(req UpdateProductRequest) error {
	var details []apperrors.ValidationDetail

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if req.Price != nil && *req.Price <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "price",
			Message: "price must be greater than zero",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}
