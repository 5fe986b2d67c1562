package notification

import (
	"context"
)

type notificationService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &notificationService{repo: repo}
}

func (s *notificationService) ListByUser(ctx context.Context, userID int) (*Feed, error) {
	notifications, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}

	return &Feed{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id int64, userID int) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID int) error {
	return s.repo.MarkAllRead(ctx, userID)
}
