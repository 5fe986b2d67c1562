package repository

import (
	"context"
	"database/sql"
	"fmt"

	"belleza/internal/domain"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) Insert(ctx context.Context, res domain.Reservation) error {
	// INSERT IGNORE backs up the service-level dedup: the unique key on
	// (productId, userId) absorbs races between concurrent reserve calls.
	query := `INSERT IGNORE INTO Reservation (productId, userId, createdAt) VALUES (?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query, res.ProductID, res.UserID, res.CreatedAt); err != nil {
		return fmt.Errorf("inserting reservation: %w", err)
	}
	return nil
}

func (r *MySQLRepository) Exists(ctx context.Context, productID, userID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM Reservation WHERE productId = ? AND userId = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, productID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking reservation existence: %w", err)
	}
	return exists, nil
}

func (r *MySQLRepository) FindByProduct(ctx context.Context, productID int) ([]domain.Reservation, error) {
	query := `SELECT productId, userId, createdAt FROM Reservation WHERE productId = ?`
	return r.queryReservations(ctx, query, productID)
}

func (r *MySQLRepository) FindByUser(ctx context.Context, userID int) ([]domain.Reservation, error) {
	query := `SELECT productId, userId, createdAt FROM Reservation WHERE userId = ?`
	return r.queryReservations(ctx, query, userID)
}

func (r *MySQLRepository) DeleteByProduct(ctx context.Context, productID int) error {
	query := `DELETE FROM Reservation WHERE productId = ?`

	if _, err := r.db.ExecContext(ctx, query, productID); err != nil {
		return fmt.Errorf("deleting reservations by product: %w", err)
	}
	return nil
}

func (r *MySQLRepository) DeleteByProductAndUser(ctx context.Context, productID, userID int) error {
	query := `DELETE FROM Reservation WHERE productId = ? AND userId = ?`

	if _, err := r.db.ExecContext(ctx, query, productID, userID); err != nil {
		return fmt.Errorf("deleting reservation: %w", err)
	}
	return nil
}

func (r *MySQLRepository) queryReservations(ctx context.Context, query string, arg interface{}) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("querying reservations: %w", err)
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ProductID, &res.UserID, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning reservation row: %w", err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reservation rows: %w", err)
	}

	return reservations, nil
}
