package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"belleza/internal/errors"
	"belleza/internal/testutil"
)

func TestNotificationRepository_FindByUser_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	_, err := db.Exec(
		`INSERT INTO Notification (userId, productId, message, isRead, createdAt) VALUES
		 (42, 1, 'older', 1, ?), (42, 7, 'newer', 0, ?), (99, 7, 'other user', 0, ?)`,
		base.Add(-time.Hour), base, base,
	)
	require.NoError(t, err)

	notifications, err := repo.FindByUser(ctx, 42)
	require.NoError(t, err)

	require.Len(t, notifications, 2)
	assert.Equal(t, "newer", notifications[0].Message)
	assert.Equal(t, "older", notifications[1].Message)
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()

	result, err := db.Exec(
		`INSERT INTO Notification (userId, productId, message, isRead, createdAt) VALUES (42, 7, 'message', 0, NOW())`,
	)
	require.NoError(t, err)
	id, err := result.LastInsertId()
	require.NoError(t, err)

	require.NoError(t, repo.MarkRead(ctx, id, 42))

	notifications, err := repo.FindByUser(ctx, 42)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.True(t, notifications[0].Read)

	// Marking an already-read notification stays a no-op, not an error.
	assert.NoError(t, repo.MarkRead(ctx, id, 42))
}

func TestNotificationRepository_MarkRead_OtherUsersNotification(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()

	result, err := db.Exec(
		`INSERT INTO Notification (userId, productId, message, isRead, createdAt) VALUES (42, 7, 'message', 0, NOW())`,
	)
	require.NoError(t, err)
	id, err := result.LastInsertId()
	require.NoError(t, err)

	err = repo.MarkRead(ctx, id, 99)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestNotificationRepository_MarkAllRead(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()

	_, err := db.Exec(
		`INSERT INTO Notification (userId, productId, message, isRead, createdAt) VALUES
		 (42, 1, 'a', 0, NOW()), (42, 7, 'b', 0, NOW()), (99, 7, 'c', 0, NOW())`,
	)
	require.NoError(t, err)

	require.NoError(t, repo.MarkAllRead(ctx, 42))

	mine, err := repo.FindByUser(ctx, 42)
	require.NoError(t, err)
	for _, n := range mine {
		assert.True(t, n.Read)
	}

	theirs, err := repo.FindByUser(ctx, 99)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.False(t, theirs[0].Read)
}
