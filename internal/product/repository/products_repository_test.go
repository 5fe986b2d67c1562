package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"belleza/internal/domain"
	"belleza/internal/errors"
	"belleza/internal/testutil"
)

func testProduct() domain.Product {
	return domain.Product{
		Name:        "Savon noir",
		Description: "Savon noir traditionnel",
		Price:       2500,
		ImageURLs:   []string{"https://cdn.example.com/savon-1.jpg", "https://cdn.example.com/savon-2.jpg"},
		Category:    "soin",
		Stock:       4,
		Status:      domain.ProductStatusActive,
	}
}

func TestProductRepository_InsertAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()

	id, err := repo.Insert(ctx, testProduct())
	require.NoError(t, err)
	require.NotZero(t, id)

	found, err := repo.FindByID(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, "Savon noir", found.Name)
	assert.Equal(t, 2500.0, found.Price)
	assert.Equal(t, 4, found.Stock)
	assert.Equal(t, domain.ProductStatusActive, found.Status)
	assert.Equal(t, []string{"https://cdn.example.com/savon-1.jpg", "https://cdn.example.com/savon-2.jpg"}, found.ImageURLs)
}

func TestProductRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	p, err := repo.FindByID(context.Background(), 9999)
	assert.Nil(t, p)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestProductRepository_FindByStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()

	active := testProduct()
	activeID, err := repo.Insert(ctx, active)
	require.NoError(t, err)

	archived := testProduct()
	archived.Name = "Huile d'argan"
	archived.Status = domain.ProductStatusArchived
	_, err = repo.Insert(ctx, archived)
	require.NoError(t, err)

	actives, err := repo.FindByStatus(ctx, domain.ProductStatusActive)
	require.NoError(t, err)
	require.Len(t, actives, 1)
	assert.Equal(t, activeID, actives[0].ID)

	all, err := repo.FindByStatus(ctx, domain.ProductStatusActive, domain.ProductStatusArchived)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProductRepository_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()

	id, err := repo.Insert(ctx, testProduct())
	require.NoError(t, err)

	updated := testProduct()
	updated.ID = id
	updated.Name = "Savon noir premium"
	updated.Price = 3000

	require.NoError(t, repo.Update(ctx, updated))

	found, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Savon noir premium", found.Name)
	assert.Equal(t, 3000.0, found.Price)

	// A no-change update succeeds.
	assert.NoError(t, repo.Update(ctx, updated))
}

func TestProductRepository_UpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()

	id, err := repo.Insert(ctx, testProduct())
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, id, domain.ProductStatusDeleted))

	found, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.ProductStatusDeleted, found.Status)

	err = repo.UpdateStatus(ctx, 9999, domain.ProductStatusActive)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestProductRepository_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()

	id, err := repo.Insert(ctx, testProduct())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.FindByID(ctx, id)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)

	err = repo.Delete(ctx, id)
	_, ok = errors.IsNotFoundError(err)
	assert.True(t, ok)
}
