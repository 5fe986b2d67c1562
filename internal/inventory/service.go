package inventory

import (
	"context"
	"time"

	"belleza/internal/domain"
	"belleza/internal/inventory/store"

	"go.uber.org/zap"
)

// Service is the inventory ledger, the sole authority for stock
// mutations. Stock writes are clamped to the zero floor and never
// rejected for their value; the replenishment trigger fires exactly once
// per zero-to-positive transition.
type Service struct {
	store  store.Store
	events EventPublisher
	logger *zap.Logger
	now    func() time.Time
}

func NewService(s store.Store, events EventPublisher, logger *zap.Logger) *Service {
	return &Service{
		store:  s,
		events: events,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Service) SetStock(ctx context.Context, productID, newStock int) (*StockUpdate, error) {
	safeStock := domain.SafeStock(newStock)

	var update *StockUpdate
	err := s.store.WithinTx(ctx, func(tx store.Tx) error {
		p, err := tx.ProductForUpdate(ctx, productID)
		if err != nil {
			return err
		}

		previousStock := p.Stock

		if err := tx.UpdateStock(ctx, productID, safeStock); err != nil {
			return err
		}

		update = &StockUpdate{
			ProductID:     productID,
			ProductName:   p.Name,
			PreviousStock: previousStock,
			Stock:         safeStock,
		}

		// Replenishment trigger: only the zero-to-positive edge fires.
		// A second call with the same value sees previousStock > 0 and
		// does nothing, so notifications are never duplicated.
		if previousStock > 0 || safeStock <= 0 {
			return nil
		}

		reservations, err := tx.ReservationsForProduct(ctx, productID)
		if err != nil {
			return err
		}
		if len(reservations) == 0 {
			return nil
		}

		now := s.now()
		for _, res := range reservations {
			n := domain.NewBackInStockNotification(res.UserID, *p, now)
			if err := tx.InsertNotification(ctx, n); err != nil {
				return err
			}
			update.NotifiedUserIDs = append(update.NotifiedUserIDs, res.UserID)
		}

		return tx.DeleteReservationsForProduct(ctx, productID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("stock updated",
		zap.Int("productId", update.ProductID),
		zap.Int("previousStock", update.PreviousStock),
		zap.Int("stock", update.Stock),
		zap.Int("notified", len(update.NotifiedUserIDs)),
	)

	s.publishReplenished(ctx, update)

	return update, nil
}

func (s *Service) publishReplenished(ctx context.Context, update *StockUpdate) {
	if s.events == nil || len(update.NotifiedUserIDs) == 0 {
		return
	}

	event := StockReplenishedEvent{
		ProductID:       update.ProductID,
		ProductName:     update.ProductName,
		Stock:           update.Stock,
		NotifiedUserIDs: update.NotifiedUserIDs,
		OccurredAt:      s.now(),
	}

	// The stock write is already committed; a failed publish is an
	// at-least-once gap downstream, not an error for the caller.
	if err := s.events.PublishStockReplenished(ctx, event); err != nil {
		s.logger.Warn("failed to publish replenishment event",
			zap.Int("productId", update.ProductID), zap.Error(err))
	}
}
