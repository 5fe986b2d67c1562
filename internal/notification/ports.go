package notification

import (
	"context"

	"belleza/internal/domain"
)

type Service interface {
	ListByUser(ctx context.Context, userID int) (*Feed, error)
	MarkRead(ctx context.Context, id int64, userID int) error
	MarkAllRead(ctx context.Context, userID int) error
}

type Repository interface {
	FindByUser(ctx context.Context, userID int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id int64, userID int) error
	MarkAllRead(ctx context.Context, userID int) error
}

// Feed is a user's notification list, newest first, with the unread
// badge count precomputed.
type Feed struct {
	Notifications []domain.Notification
	UnreadCount   int
}
