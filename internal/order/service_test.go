package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"belleza/internal/config"
	"belleza/internal/domain"
	"belleza/internal/errors"
	"belleza/internal/order/repository"
	"belleza/internal/testutil"
)

type fakeCartAccess struct {
	cart    *domain.Cart
	cleared bool
}

func (f *fakeCartAccess) Get(ctx context.Context, userID int) (*domain.Cart, error) {
	return f.cart, nil
}

func (f *fakeCartAccess) Clear(ctx context.Context, userID int) error {
	f.cleared = true
	return nil
}

func testCheckoutConfig() config.CheckoutConfig {
	return config.CheckoutConfig{
		MerchantPhone: "221771234567",
		StoreBaseURL:  "https://belleza.example.com",
	}
}

func validCheckoutRequest() CheckoutRequest {
	return CheckoutRequest{
		FirstName: "Aminata",
		LastName:  "Diop",
		Phone:     "771234567",
		Address:   "Dakar, Médina",
	}
}

// Unit Tests

func TestCheckout_ValidationFailure(t *testing.T) {
	svc := NewService(nil, nil, &fakeCartAccess{}, testCheckoutConfig(), zap.NewNop())

	resp, err := svc.Checkout(context.Background(), 42, CheckoutRequest{})

	assert.Nil(t, resp)
	ve, ok := errors.IsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Details, 3)
}

func TestCheckout_EmptyCart(t *testing.T) {
	carts := &fakeCartAccess{cart: &domain.Cart{}}
	svc := NewService(nil, nil, carts, testCheckoutConfig(), zap.NewNop())

	resp, err := svc.Checkout(context.Background(), 42, validCheckoutRequest())

	assert.Nil(t, resp)
	_, ok := errors.IsValidationError(err)
	assert.True(t, ok)
	assert.False(t, carts.cleared)
}

// Integration Tests

func TestCheckout_RecordsOrderAndClearsCart(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	carts := &fakeCartAccess{cart: &domain.Cart{Lines: []domain.CartLine{
		{ProductID: 1, Name: "Savon noir", Price: 2500, Quantity: 2},
		{ProductID: 3, Name: "Huile d'argan", Price: 7000, Quantity: 1},
	}}}

	repo := repository.NewMySQLRepository(db)
	svc := NewService(db, repo, carts, testCheckoutConfig(), zap.NewNop())

	resp, err := svc.Checkout(context.Background(), 42, validCheckoutRequest())
	require.NoError(t, err)

	assert.NotZero(t, resp.OrderID)
	assert.Equal(t, 12000.0, resp.Total)
	assert.Contains(t, resp.WhatsAppURL, "https://wa.me/221771234567?text=")
	assert.True(t, carts.cleared)

	orders, err := svc.ListByUser(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	order := orders[0]
	assert.Equal(t, resp.OrderID, order.ID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, 12000.0, order.TotalPrice)
	assert.Equal(t, "Aminata", order.FirstName)
	require.NotNil(t, order.Address)
	assert.Equal(t, "Dakar, Médina", *order.Address)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Savon noir", order.Items[0].Name)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 2500.0, order.Items[0].Price)
}

func TestListByUser_EmptyHistory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := repository.NewMySQLRepository(db)
	svc := NewService(db, repo, &fakeCartAccess{}, testCheckoutConfig(), zap.NewNop())

	orders, err := svc.ListByUser(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
