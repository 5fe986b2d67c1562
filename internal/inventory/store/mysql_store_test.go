package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"belleza/internal/domain"
	"belleza/internal/errors"
	"belleza/internal/testutil"
)

func TestMySQLStore_WithinTx_FullSequence(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	_, err := db.Exec(
		`INSERT INTO Product (id, name, description, price, stock, status) VALUES (7, 'Beurre de karité', '', 5500, 0, 'active')`,
	)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO Reservation (productId, userId, createdAt) VALUES (7, 42, NOW())`)
	require.NoError(t, err)

	s := NewMySQLStore(db)
	ctx := context.Background()

	err = s.WithinTx(ctx, func(tx Tx) error {
		p, err := tx.ProductForUpdate(ctx, 7)
		if err != nil {
			return err
		}
		assert.Equal(t, "Beurre de karité", p.Name)
		assert.Equal(t, 0, p.Stock)

		if err := tx.UpdateStock(ctx, 7, 3); err != nil {
			return err
		}

		reservations, err := tx.ReservationsForProduct(ctx, 7)
		if err != nil {
			return err
		}
		require.Len(t, reservations, 1)

		n := domain.NewBackInStockNotification(reservations[0].UserID, *p, time.Now())
		if err := tx.InsertNotification(ctx, n); err != nil {
			return err
		}

		return tx.DeleteReservationsForProduct(ctx, 7)
	})
	require.NoError(t, err)

	var stock int
	require.NoError(t, db.QueryRow(`SELECT stock FROM Product WHERE id = 7`).Scan(&stock))
	assert.Equal(t, 3, stock)

	var reservationCount int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM Reservation WHERE productId = 7`).Scan(&reservationCount))
	assert.Zero(t, reservationCount)

	var notificationCount int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM Notification WHERE userId = 42`).Scan(&notificationCount))
	assert.Equal(t, 1, notificationCount)
}

func TestMySQLStore_WithinTx_ErrorRollsBackEverything(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	_, err := db.Exec(
		`INSERT INTO Product (id, name, description, price, stock, status) VALUES (7, 'Beurre de karité', '', 5500, 0, 'active')`,
	)
	require.NoError(t, err)

	s := NewMySQLStore(db)
	ctx := context.Background()

	err = s.WithinTx(ctx, func(tx Tx) error {
		if err := tx.UpdateStock(ctx, 7, 3); err != nil {
			return err
		}
		return assert.AnError
	})
	assert.Error(t, err)

	var stock int
	require.NoError(t, db.QueryRow(`SELECT stock FROM Product WHERE id = 7`).Scan(&stock))
	assert.Equal(t, 0, stock)
}

func TestMySQLStore_ProductForUpdate_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	s := NewMySQLStore(db)
	ctx := context.Background()

	err := s.WithinTx(ctx, func(tx Tx) error {
		_, err := tx.ProductForUpdate(ctx, 9999)
		return err
	})

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}
