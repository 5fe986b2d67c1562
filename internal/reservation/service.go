package reservation

import (
	"context"
	"fmt"
	"time"

	"belleza/internal/domain"
	apperrors "belleza/internal/errors"

	"go.uber.org/zap"
)

type reservationService struct {
	repo     Repository
	products ProductFinder
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(repo Repository, products ProductFinder, logger *zap.Logger) Service {
	return &reservationService{
		repo:     repo,
		products: products,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *reservationService) Reserve(ctx context.Context, productID, userID int) error {
	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if p.IsDeleted() {
		return apperrors.NewNotFoundError(fmt.Sprintf("product with id %d not found", productID))
	}

	exists, err := s.repo.Exists(ctx, productID, userID)
	if err != nil {
		return err
	}
	if exists {
		// Uniqueness per (product, user) pair is enforced by silent
		// dedup, not by rejection.
		return nil
	}

	res := domain.Reservation{
		ProductID: productID,
		UserID:    userID,
		CreatedAt: s.now(),
	}

	if err := s.repo.Insert(ctx, res); err != nil {
		return err
	}

	s.logger.Info("reservation created", zap.Int("productId", productID), zap.Int("userId", userID))
	return nil
}

func (s *reservationService) ListByUser(ctx context.Context, userID int) ([]domain.Reservation, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *reservationService) HasReserved(ctx context.Context, productID, userID int) (bool, error) {
	return s.repo.Exists(ctx, productID, userID)
}

func (s *reservationService) Cancel(ctx context.Context, productID, userID int) error {
	return s.repo.DeleteByProductAndUser(ctx, productID, userID)
}

func (s *reservationService) ReservationsFor(ctx context.Context, productID int) ([]domain.Reservation, error) {
	return s.repo.FindByProduct(ctx, productID)
}

func (s *reservationService) ClearReservations(ctx context.Context, productID int) error {
	return s.repo.DeleteByProduct(ctx, productID)
}
