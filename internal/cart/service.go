package cart

import (
	"context"
	"fmt"
	"sort"

	"belleza/internal/domain"
	apperrors "belleza/internal/errors"

	"go.uber.org/zap"
)

type cartService struct {
	store    Store
	products ProductFinder
	logger   *zap.Logger
}

func NewService(store Store, products ProductFinder, logger *zap.Logger) Service {
	return &cartService{
		store:    store,
		products: products,
		logger:   logger,
	}
}

func (s *cartService) Get(ctx context.Context, userID int) (*domain.Cart, error) {
	items, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart := &domain.Cart{Lines: []domain.CartLine{}}

	productIDs := make([]int, 0, len(items))
	for productID := range items {
		productIDs = append(productIDs, productID)
	}
	sort.Ints(productIDs)

	for _, productID := range productIDs {
		p, err := s.products.FindByID(ctx, productID)
		if err != nil {
			if _, ok := apperrors.IsNotFoundError(err); ok {
				// Product removed since it was added; drop the stale line.
				if err := s.store.Remove(ctx, userID, productID); err != nil {
					s.logger.Warn("failed to drop stale cart line",
						zap.Int("userId", userID), zap.Int("productId", productID), zap.Error(err))
				}
				continue
			}
			return nil, err
		}

		imageURL := ""
		if len(p.ImageURLs) > 0 {
			imageURL = p.ImageURLs[0]
		}

		cart.Lines = append(cart.Lines, domain.CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			ImageURL:  imageURL,
			Quantity:  items[productID],
			Stock:     p.Stock,
		})
	}

	return cart, nil
}

func (s *cartService) AddItem(ctx context.Context, userID, productID int) error {
	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	// Only products that are visible and in stock may enter a cart.
	if !p.IsActive() {
		return apperrors.NewNotFoundError(fmt.Sprintf("product with id %d not found", productID))
	}
	if !p.InStock() {
		return apperrors.NewValidationError("product is out of stock", apperrors.ValidationDetail{
			Field:   "productId",
			Message: "product is out of stock",
		})
	}

	return s.store.Increment(ctx, userID, productID, 1)
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID, productID, quantity int) error {
	// A non-positive quantity removes the line, mirroring the storefront.
	if quantity <= 0 {
		return s.store.Remove(ctx, userID, productID)
	}

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return err
	}

	return s.store.SetQuantity(ctx, userID, productID, quantity)
}

func (s *cartService) RemoveItem(ctx context.Context, userID, productID int) error {
	return s.store.Remove(ctx, userID, productID)
}

func (s *cartService) Clear(ctx context.Context, userID int) error {
	return s.store.Clear(ctx, userID)
}
