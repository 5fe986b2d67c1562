package order

import (
	"context"
	"database/sql"

	"belleza/internal/domain"
)

type Service interface {
	Checkout(ctx context.Context, userID int, req CheckoutRequest) (*CheckoutResponse, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Order, error)
}

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type Repository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error)
	InsertItem(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error)
	FindByUser(ctx context.Context, userID int) ([]domain.Order, error)
}

// CartAccess is the slice of the cart module checkout needs: read the
// cart to snapshot it, clear it once the order is recorded.
type CartAccess interface {
	Get(ctx context.Context, userID int) (*domain.Cart, error)
	Clear(ctx context.Context, userID int) error
}
