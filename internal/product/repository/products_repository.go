package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"belleza/internal/domain"
	"belleza/internal/errors"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

const productColumns = `id, name, description, price, imageUrls, category, stock, status, createdAt, updatedAt`

func scanProduct(row interface{ Scan(...interface{}) error }) (*domain.Product, error) {
	var p domain.Product
	var imageURLs []byte

	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &imageURLs,
		&p.Category, &p.Stock, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(imageURLs) > 0 {
		if err := json.Unmarshal(imageURLs, &p.ImageURLs); err != nil {
			return nil, fmt.Errorf("decoding image urls: %w", err)
		}
	}

	return &p, nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM Product WHERE id = ?`, productColumns)

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}

	return p, nil
}

func (r *MySQLRepository) FindByStatus(ctx context.Context, statuses ...string) ([]domain.Product, error) {
	if len(statuses) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(statuses))
	args := make([]interface{}, 0, len(statuses))
	for i, status := range statuses {
		placeholders[i] = "?"
		args = append(args, status)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM Product
		WHERE status IN (%s)
		ORDER BY id`,
		productColumns, strings.Join(placeholders, ", "),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (r *MySQLRepository) Insert(ctx context.Context, p domain.Product) (int, error) {
	imageURLs, err := json.Marshal(p.ImageURLs)
	if err != nil {
		return 0, fmt.Errorf("encoding image urls: %w", err)
	}

	query := `
		INSERT INTO Product (name, description, price, imageUrls, category, stock, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Description, p.Price, imageURLs, p.Category, p.Stock, p.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted product id: %w", err)
	}

	return int(id), nil
}

func (r *MySQLRepository) Update(ctx context.Context, p domain.Product) error {
	imageURLs, err := json.Marshal(p.ImageURLs)
	if err != nil {
		return fmt.Errorf("encoding image urls: %w", err)
	}

	// MySQL reports zero affected rows for a no-change update, so
	// existence is checked separately instead of via RowsAffected.
	if err := r.checkExists(ctx, p.ID); err != nil {
		return err
	}

	query := `
		UPDATE Product
		SET name = ?, description = ?, price = ?, imageUrls = ?, category = ?
		WHERE id = ?
	`

	if _, err := r.db.ExecContext(ctx, query,
		p.Name, p.Description, p.Price, imageURLs, p.Category, p.ID,
	); err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	return nil
}

func (r *MySQLRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	if err := r.checkExists(ctx, id); err != nil {
		return err
	}

	query := `UPDATE Product SET status = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("updating product status: %w", err)
	}

	return nil
}

func (r *MySQLRepository) checkExists(ctx context.Context, id int) error {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM Product WHERE id = ?)`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return fmt.Errorf("checking product existence: %w", err)
	}
	if !exists {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	return nil
}

func (r *MySQLRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM Product WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}

	return nil
}
