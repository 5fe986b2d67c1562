package domain

import "time"

// Reservation is a standing request by a user to be notified when a
// product comes back in stock. At most one exists per (product, user)
// pair; duplicates are deduplicated silently on insert.
type Reservation struct {
	ProductID int
	UserID    int
	CreatedAt time.Time
}
