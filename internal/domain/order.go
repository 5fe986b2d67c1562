package domain

import "time"

const (
	OrderStatusPending  = "PENDING"
	OrderStatusCreated  = "CREATED"
	OrderStatusCanceled = "CANCELED"
)

type Order struct {
	ID         uint
	UserID     int
	FirstName  string
	LastName   string
	Phone      string
	Address    *string
	Status     string
	TotalPrice float64
	Items      []OrderItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type OrderItem struct {
	ID        uint
	OrderID   uint
	ProductID int
	// Name and Price are snapshots taken at checkout time; later catalog
	// edits must not rewrite order history.
	Name     string
	Quantity int
	Price    float64
}

func (o Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}
