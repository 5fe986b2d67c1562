package repository

import (
	"context"
	"database/sql"
	"fmt"

	"belleza/internal/domain"
	"belleza/internal/errors"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) FindByUser(ctx context.Context, userID int) ([]domain.Notification, error) {
	query := `
		SELECT id, userId, productId, message, isRead, createdAt
		FROM Notification
		WHERE userId = ?
		ORDER BY createdAt DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying notifications: %w", err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.ProductID, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notification rows: %w", err)
	}

	return notifications, nil
}

func (r *MySQLRepository) MarkRead(ctx context.Context, id int64, userID int) error {
	// Scoped by userId so users cannot touch each other's notifications.
	var exists bool
	checkQuery := `SELECT EXISTS(SELECT 1 FROM Notification WHERE id = ? AND userId = ?)`
	if err := r.db.QueryRowContext(ctx, checkQuery, id, userID).Scan(&exists); err != nil {
		return fmt.Errorf("checking notification existence: %w", err)
	}
	if !exists {
		return errors.NewNotFoundError(fmt.Sprintf("notification with id %d not found", id))
	}

	query := `UPDATE Notification SET isRead = 1 WHERE id = ? AND userId = ?`
	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}

	return nil
}

func (r *MySQLRepository) MarkAllRead(ctx context.Context, userID int) error {
	query := `UPDATE Notification SET isRead = 1 WHERE userId = ? AND isRead = 0`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("marking notifications read: %w", err)
	}
	return nil
}
