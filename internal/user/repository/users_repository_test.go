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

func TestUserRepository_InsertAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()

	id, err := repo.Insert(ctx, domain.User{
		Email:        "aminata@example.com",
		PasswordHash: "$2a$10$fakehash",
		FirstName:    "Aminata",
		LastName:     "Diop",
		Role:         domain.RoleCustomer,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	byEmail, err := repo.FindByEmail(ctx, "aminata@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, byEmail.ID)
	assert.Equal(t, "Aminata", byEmail.FirstName)
	assert.Equal(t, domain.RoleCustomer, byEmail.Role)

	byID, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "aminata@example.com", byID.Email)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	u, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	assert.Nil(t, u)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}
