package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"belleza/internal/domain"
	apperrors "belleza/internal/errors"

	"github.com/go-sql-driver/mysql"
)

const txTimeout = 5 * time.Second

// Store scopes a read-modify-write-notify sequence to one transaction.
// Implementations must serialize concurrent sequences touching the same
// product (row locking); fn runs exactly once, and any error aborts the
// whole sequence without partial effects.
type Store interface {
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}

type Tx interface {
	// ProductForUpdate loads the product row and locks it for the rest
	// of the transaction.
	ProductForUpdate(ctx context.Context, productID int) (*domain.Product, error)
	UpdateStock(ctx context.Context, productID, stock int) error
	ReservationsForProduct(ctx context.Context, productID int) ([]domain.Reservation, error)
	InsertNotification(ctx context.Context, n domain.Notification) error
	DeleteReservationsForProduct(ctx context.Context, productID int) error
}

// MySQLStore runs the ledger's read-modify-write-notify sequence inside
// a REPEATABLE READ transaction; the FOR UPDATE lock on the product row
// serializes concurrent sequences per product.
type MySQLStore struct {
	db *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

func (s *MySQLStore) WithinTx(ctx context.Context, fn func(tx Tx) error) error {
	txCtx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return apperrors.NewStorageError("beginning transaction", err)
	}
	// MySQL ignores rollback after a successful commit.
	defer tx.Rollback()

	if err := fn(&mysqlTx{tx: tx}); err != nil {
		return translateError(err)
	}

	if err := tx.Commit(); err != nil {
		return translateError(apperrors.NewStorageError("committing transaction", err))
	}

	return nil
}

// translateError maps lock conflicts to Conflict so callers know a retry
// is appropriate.
func translateError(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		// 1213: deadlock, 1205: lock wait timeout.
		if mysqlErr.Number == 1213 || mysqlErr.Number == 1205 {
			return apperrors.NewConflictError("concurrent stock mutation detected, retry the request")
		}
	}
	return err
}

type mysqlTx struct {
	tx *sql.Tx
}

func (t *mysqlTx) ProductForUpdate(ctx context.Context, productID int) (*domain.Product, error) {
	query := `
		SELECT id, name, stock, status
		FROM Product
		WHERE id = ?
		FOR UPDATE
	`

	var p domain.Product
	err := t.tx.QueryRowContext(ctx, query, productID).Scan(&p.ID, &p.Name, &p.Stock, &p.Status)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("product with id %d not found", productID))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product for update: %w", err)
	}

	return &p, nil
}

func (t *mysqlTx) UpdateStock(ctx context.Context, productID, stock int) error {
	query := `UPDATE Product SET stock = ? WHERE id = ?`

	if _, err := t.tx.ExecContext(ctx, query, stock, productID); err != nil {
		return fmt.Errorf("updating stock: %w", err)
	}
	return nil
}

func (t *mysqlTx) ReservationsForProduct(ctx context.Context, productID int) ([]domain.Reservation, error) {
	query := `SELECT productId, userId, createdAt FROM Reservation WHERE productId = ?`

	rows, err := t.tx.QueryContext(ctx, query, productID)
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

func (t *mysqlTx) InsertNotification(ctx context.Context, n domain.Notification) error {
	query := `
		INSERT INTO Notification (userId, productId, message, isRead, createdAt)
		VALUES (?, ?, ?, ?, ?)
	`

	if _, err := t.tx.ExecContext(ctx, query, n.UserID, n.ProductID, n.Message, n.Read, n.CreatedAt); err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}
	return nil
}

func (t *mysqlTx) DeleteReservationsForProduct(ctx context.Context, productID int) error {
	query := `DELETE FROM Reservation WHERE productId = ?`

	if _, err := t.tx.ExecContext(ctx, query, productID); err != nil {
		return fmt.Errorf("deleting reservations: %w", err)
	}
	return nil
}
