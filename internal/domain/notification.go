package domain

import (
	"fmt"
	"time"
)

// Notification is immutable once created except for the Read flag.
type Notification struct {
	ID        int64
	UserID    int
	ProductID int
	Message   string
	Read      bool
	CreatedAt time.Time
}

// NewBackInStockNotification builds the notification emitted by the
// replenishment trigger when a product's stock crosses from zero to
// positive.
func NewBackInStockNotification(userID int, product Product, now time.Time) Notification {
	return Notification{
		UserID:    userID,
		ProductID: product.ID,
		Message:   fmt.Sprintf("Bonne nouvelle ! Le produit \"%s\" que vous attendiez est de nouveau en stock.", product.Name),
		Read:      false,
		CreatedAt: now,
	}
}
