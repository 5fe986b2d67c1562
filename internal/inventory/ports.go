package inventory

import (
	"context"
	"time"
)

type Ledger interface {
	SetStock(ctx context.Context, productID, newStock int) (*StockUpdate, error)
}

// StockUpdate is the outcome of a stock write, including who was
// notified by the replenishment trigger (empty when the trigger did not
// fire).
type StockUpdate struct {
	ProductID       int
	ProductName     string
	PreviousStock   int
	Stock           int
	NotifiedUserIDs []int
}

// EventPublisher announces replenishments to downstream consumers. The
// publish happens after commit and is best effort; failures never undo
// the stock write.
type EventPublisher interface {
	PublishStockReplenished(ctx context.Context, event StockReplenishedEvent) error
}

type StockReplenishedEvent struct {
	ProductID       int       `json:"productId"`
	ProductName     string    `json:"productName"`
	Stock           int       `json:"stock"`
	NotifiedUserIDs []int     `json:"notifiedUserIds"`
	OccurredAt      time.Time `json:"occurredAt"`
}
