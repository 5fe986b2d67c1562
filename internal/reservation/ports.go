package reservation

import (
	"context"

	"belleza/internal/domain"
)

type Service interface {
	// Reserve registers the user's interest in a product. A duplicate
	// (product, user) pair is a silent no-op, not an error.
	Reserve(ctx context.Context, productID, userID int) error
	ListByUser(ctx context.Context, userID int) ([]domain.Reservation, error)
	HasReserved(ctx context.Context, productID, userID int) (bool, error)
	Cancel(ctx context.Context, productID, userID int) error
	ReservationsFor(ctx context.Context, productID int) ([]domain.Reservation, error)
	ClearReservations(ctx context.Context, productID int) error
}

type Repository interface {
	Insert(ctx context.Context, res domain.Reservation) error
	Exists(ctx context.Context, productID, userID int) (bool, error)
	FindByProduct(ctx context.Context, productID int) ([]domain.Reservation, error)
	FindByUser(ctx context.Context, userID int) ([]domain.Reservation, error)
	DeleteByProduct(ctx context.Context, productID int) error
	DeleteByProductAndUser(ctx context.Context, productID, userID int) error
}

// ProductFinder is the slice of the catalog the registry needs: reserve
// requests are only accepted for products that exist.
type ProductFinder interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
}
