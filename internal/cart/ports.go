package cart

import (
	"context"

	"belleza/internal/domain"
)

type Service interface {
	Get(ctx context.Context, userID int) (*domain.Cart, error)
	AddItem(ctx context.Context, userID, productID int) error
	UpdateQuantity(ctx context.Context, userID, productID, quantity int) error
	RemoveItem(ctx context.Context, userID, productID int) error
	Clear(ctx context.Context, userID int) error
}

// Store holds cart contents as productID -> quantity per user. The cart
// is a cache of intent; the catalog stays authoritative for price and
// stock at read time.
type Store interface {
	Get(ctx context.Context, userID int) (map[int]int, error)
	Increment(ctx context.Context, userID, productID, delta int) error
	SetQuantity(ctx context.Context, userID, productID, quantity int) error
	Remove(ctx context.Context, userID, productID int) error
	Clear(ctx context.Context, userID int) error
}

type ProductFinder interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
}
