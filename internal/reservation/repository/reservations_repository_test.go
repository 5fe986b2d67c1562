package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"belleza/internal/domain"
	"belleza/internal/testutil"
)

func TestReservationRepository_InsertAndExists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()

	exists, err := repo.Exists(ctx, 7, 42)
	require.NoError(t, err)
	assert.False(t, exists)

	err = repo.Insert(ctx, domain.Reservation{ProductID: 7, UserID: 42, CreatedAt: time.Now()})
	require.NoError(t, err)

	exists, err = repo.Exists(ctx, 7, 42)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestReservationRepository_DuplicateInsertIsAbsorbed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()

	res := domain.Reservation{ProductID: 7, UserID: 42, CreatedAt: time.Now()}
	require.NoError(t, repo.Insert(ctx, res))
	require.NoError(t, repo.Insert(ctx, res))

	reservations, err := repo.FindByProduct(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, reservations, 1)
}

func TestReservationRepository_FindByUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Insert(ctx, domain.Reservation{ProductID: 7, UserID: 42, CreatedAt: now}))
	require.NoError(t, repo.Insert(ctx, domain.Reservation{ProductID: 3, UserID: 42, CreatedAt: now}))
	require.NoError(t, repo.Insert(ctx, domain.Reservation{ProductID: 7, UserID: 99, CreatedAt: now}))

	reservations, err := repo.FindByUser(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, reservations, 2)
}

func TestReservationRepository_DeleteByProduct(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Insert(ctx, domain.Reservation{ProductID: 7, UserID: 42, CreatedAt: now}))
	require.NoError(t, repo.Insert(ctx, domain.Reservation{ProductID: 7, UserID: 99, CreatedAt: now}))
	require.NoError(t, repo.Insert(ctx, domain.Reservation{ProductID: 3, UserID: 42, CreatedAt: now}))

	require.NoError(t, repo.DeleteByProduct(ctx, 7))

	remaining, err := repo.FindByProduct(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	others, err := repo.FindByProduct(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, others, 1)
}

func TestReservationRepository_DeleteByProductAndUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Insert(ctx, domain.Reservation{ProductID: 7, UserID: 42, CreatedAt: now}))
	require.NoError(t, repo.Insert(ctx, domain.Reservation{ProductID: 7, UserID: 99, CreatedAt: now}))

	require.NoError(t, repo.DeleteByProductAndUser(ctx, 7, 42))

	exists, err := repo.Exists(ctx, 7, 42)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.Exists(ctx, 7, 99)
	require.NoError(t, err)
	assert.True(t, exists)
}
