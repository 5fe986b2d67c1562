package domain

import "time"

const (
	ProductStatusActive   = "active"
	ProductStatusArchived = "archived"
	ProductStatusDeleted  = "deleted"
)

type Product struct {
	ID          int
	Name        string
	Description string
	Price       float64
	ImageURLs   []string
	Category    string
	Stock       int
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

func (p Product) IsDeleted() bool {
	return p.Status == ProductStatusDeleted
}

// InStock reports whether the product can currently be added to a cart.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// SafeStock clamps a requested stock value to the zero floor. Stock is
// never negative; out-of-range writes are clamped, not rejected.
func SafeStock(stock int) int {
	if stock < 0 {
		return 0
	}
	return stock
}

func ValidProductStatus(status string) bool {
	switch status {
	case ProductStatusActive, ProductStatusArchived, ProductStatusDeleted:
		return true
	}
	return false
}
