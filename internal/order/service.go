package order

import (
	"context"
	"strings"
	"time"

	"belleza/internal/config"
	"belleza/internal/domain"
	apperrors "belleza/internal/errors"

	"go.uber.org/zap"
)

const checkoutTxTimeout = 5 * time.Second

type orderService struct {
	db     TransactionManager
	repo   Repository
	carts  CartAccess
	cfg    config.CheckoutConfig
	logger *zap.Logger
}

func NewService(db TransactionManager, repo Repository, carts CartAccess, cfg config.CheckoutConfig, logger *zap.Logger) Service {
	return &orderService{
		db:     db,
		repo:   repo,
		carts:  carts,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *orderService) Checkout(ctx context.Context, userID int, req CheckoutRequest) (*CheckoutResponse, error) {
	if err := validateCheckoutRequest(req); err != nil {
		return nil, err
	}

	userCart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(userCart.Lines) == 0 {
		return nil, apperrors.NewValidationError("cart is empty", apperrors.ValidationDetail{
			Field:   "cart",
			Message: "cannot check out an empty cart",
		})
	}

	total := userCart.Total()

	orderID, err := s.recordOrder(ctx, userID, req, userCart, total)
	if err != nil {
		return nil, err
	}

	whatsappURL := BuildWhatsAppURL(s.cfg.MerchantPhone, s.cfg.StoreBaseURL, req, userCart.Lines, total)

	// The order is durably recorded; a failed cart clear only leaves a
	// stale cache behind.
	if err := s.carts.Clear(ctx, userID); err != nil {
		s.logger.Warn("failed to clear cart after checkout",
			zap.Int("userId", userID), zap.Uint("orderId", orderID), zap.Error(err))
	}

	s.logger.Info("order recorded",
		zap.Uint("orderId", orderID), zap.Int("userId", userID), zap.Float64("total", total))

	return &CheckoutResponse{
		OrderID:     orderID,
		Total:       total,
		WhatsAppURL: whatsappURL,
	}, nil
}

func (s *orderService) recordOrder(ctx context.Context, userID int, req CheckoutRequest, userCart *domain.Cart, total float64) (uint, error) {
	txCtx, cancel := context.WithTimeout(ctx, checkoutTxTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		return 0, apperrors.NewStorageError("beginning transaction", err)
	}
	// MySQL ignores rollback if already committed.
	defer tx.Rollback()

	newOrder := domain.Order{
		UserID:     userID,
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		Phone:      strings.TrimSpace(req.Phone),
		Status:     domain.OrderStatusPending,
		TotalPrice: total,
	}
	if address := strings.TrimSpace(req.Address); address != "" {
		newOrder.Address = &address
	}

	orderID, err := s.repo.Insert(txCtx, tx, newOrder)
	if err != nil {
		return 0, err
	}

	for _, line := range userCart.Lines {
		item := domain.OrderItem{
			OrderID:   orderID,
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Price,
		}
		if _, err := s.repo.InsertItem(txCtx, tx, item); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, apperrors.NewStorageError("committing transaction", err)
	}

	return orderID, nil
}

func (s *orderService) ListByUser(ctx context.Context, userID int) ([]domain.Order, error) {
	return s.repo.FindByUser(ctx, userID)
}

func validateCheckoutRequest(req CheckoutRequest) error {
	var details []apperrors.ValidationDetail

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

	if strings.TrimSpace(req.Phone) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "phone",
			Message: "phone is required",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}
