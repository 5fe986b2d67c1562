package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"belleza/internal/domain"
	"belleza/internal/errors"
)

type mockRepository struct {
	findByIDFn     func(ctx context.Context, id int) (*domain.Product, error)
	findByStatusFn func(ctx context.Context, statuses ...string) ([]domain.Product, error)
	insertFn       func(ctx context.Context, p domain.Product) (int, error)
	updateFn       func(ctx context.Context, p domain.Product) error
	updateStatusFn func(ctx context.Context, id int, status string) error
	deleteFn       func(ctx context.Context, id int) error
}

func (m *mockRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockRepository) FindByStatus(ctx context.Context, statuses ...string) ([]domain.Product, error) {
	return m.findByStatusFn(ctx, statuses...)
}

func (m *mockRepository) Insert(ctx context.Context, p domain.Product) (int, error) {
	return m.insertFn(ctx, p)
}

func (m *mockRepository) Update(ctx context.Context, p domain.Product) error {
	return m.updateFn(ctx, p)
}

func (m *mockRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	return m.updateStatusFn(ctx, id, status)
}

func (m *mockRepository) Delete(ctx context.Context, id int) error {
	return m.deleteFn(ctx, id)
}

type mockClearer struct {
	clearedProductID int
	err              error
}

func (m *mockClearer) ClearReservations(ctx context.Context, productID int) error {
	m.clearedProductID = productID
	return m.err
}

func TestGetByID_DeletedHiddenFromCustomers(t *testing.T) {
	repo := &mockRepository{
		findByIDFn: func(ctx context.Context, id int) (*domain.Product, error) {
			return &domain.Product{ID: id, Status: domain.ProductStatusDeleted}, nil
		},
	}

	svc := NewService(repo, &mockClearer{}, zap.NewNop())

	p, err := svc.GetByID(context.Background(), 7, false)
	assert.Nil(t, p)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)

	p, err = svc.GetByID(context.Background(), 7, true)
	require.NoError(t, err)
	assert.Equal(t, domain.ProductStatusDeleted, p.Status)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&mockRepository{}, &mockClearer{}, zap.NewNop())

	p, err := svc.Create(context.Background(), CreateProductRequest{Name: " ", Price: 0})

	assert.Nil(t, p)
	ve, ok := errors.IsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Details, 2)
}

func TestCreate_ClampsNegativeStock(t *testing.T) {
	var inserted domain.Product
	repo := &mockRepository{
		insertFn: func(ctx context.Context, p domain.Product) (int, error) {
			inserted = p
			return 1, nil
		},
		findByIDFn: func(ctx context.Context, id int) (*domain.Product, error) {
			return &domain.Product{ID: id}, nil
		},
	}

	svc := NewService(repo, &mockClearer{}, zap.NewNop())
	_, err := svc.Create(context.Background(), CreateProductRequest{Name: "Savon noir", Price: 2500, Stock: -4})
	require.NoError(t, err)

	assert.Equal(t, 0, inserted.Stock)
	assert.Equal(t, domain.ProductStatusActive, inserted.Status)
}

func TestUpdate_PartialFields(t *testing.T) {
	var updated domain.Product
	repo := &mockRepository{
		findByIDFn: func(ctx context.Context, id int) (*domain.Product, error) {
			return &domain.Product{ID: id, Name: "Savon noir", Price: 2500, Category: "soin"}, nil
		},
		updateFn: func(ctx context.Context, p domain.Product) error {
			updated = p
			return nil
		},
	}

	newPrice := 3000.0
	svc := NewService(repo, &mockClearer{}, zap.NewNop())
	_, err := svc.Update(context.Background(), 1, UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)

	// Untouched fields keep their stored values.
	assert.Equal(t, "Savon noir", updated.Name)
	assert.Equal(t, 3000.0, updated.Price)
	assert.Equal(t, "soin", updated.Category)
}

func TestUpdateStatus_RejectsDeleted(t *testing.T) {
	svc := NewService(&mockRepository{}, &mockClearer{}, zap.NewNop())

	err := svc.UpdateStatus(context.Background(), 1, domain.ProductStatusDeleted)

	_, ok := errors.IsValidationError(err)
	assert.True(t, ok)
}

func TestSoftDeleteAndRestore(t *testing.T) {
	var gotStatus string
	repo := &mockRepository{
		updateStatusFn: func(ctx context.Context, id int, status string) error {
			gotStatus = status
			return nil
		},
	}

	svc := NewService(repo, &mockClearer{}, zap.NewNop())

	require.NoError(t, svc.SoftDelete(context.Background(), 1))
	assert.Equal(t, domain.ProductStatusDeleted, gotStatus)

	require.NoError(t, svc.Restore(context.Background(), 1))
	assert.Equal(t, domain.ProductStatusActive, gotStatus)
}

func TestPermanentDelete_ClearsReservationsFirst(t *testing.T) {
	deleted := false
	repo := &mockRepository{
		deleteFn: func(ctx context.Context, id int) error {
			deleted = true
			return nil
		},
	}
	clearer := &mockClearer{}

	svc := NewService(repo, clearer, zap.NewNop())
	err := svc.PermanentDelete(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 7, clearer.clearedProductID)
	assert.True(t, deleted)
}

func TestPermanentDelete_AbortsWhenClearFails(t *testing.T) {
	deleted := false
	repo := &mockRepository{
		deleteFn: func(ctx context.Context, id int) error {
			deleted = true
			return nil
		},
	}
	clearer := &mockClearer{err: assert.AnError}

	svc := NewService(repo, clearer, zap.NewNop())
	err := svc.PermanentDelete(context.Background(), 7)

	assert.Error(t, err)
	assert.False(t, deleted)
}
