package product

import (
	"context"

	"belleza/internal/domain"
)

type Service interface {
	ListActive(ctx context.Context) ([]domain.Product, error)
	ListAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int, includeDeleted bool) (*domain.Product, error)
	Create(ctx context.Context, req CreateProductRequest) (*domain.Product, error)
	Update(ctx context.Context, id int, req UpdateProductRequest) (*domain.Product, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	SoftDelete(ctx context.Context, id int) error
	Restore(ctx context.Context, id int) error
	PermanentDelete(ctx context.Context, id int) error
}

type Repository interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	FindByStatus(ctx context.Context, statuses ...string) ([]domain.Product, error)
	Insert(ctx context.Context, p domain.Product) (int, error)
	Update(ctx context.Context, p domain.Product) error
	UpdateStatus(ctx context.Context, id int, status string) error
	Delete(ctx context.Context, id int) error
}

// ReservationClearer removes all standing reservations for a product.
// Used when a product is permanently deleted.
type ReservationClearer interface {
	ClearReservations(ctx context.Context, productID int) error
}
