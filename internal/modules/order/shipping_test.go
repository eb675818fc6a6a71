package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souqline/souq-backend/internal/modules/notification"
)

func placeTestOrder(t *testing.T, env *testEnv) *Order {
	t.Helper()
	c := env.addCustomer(t)
	p := env.addProduct(t, "SHIP1", 5, 10, 50, 2)
	o, err := env.orders.PlaceOrder(context.Background(), PlaceOrderRequest{
		CustomerID: c.ID,
		Items:      []LineItem{{ProductID: p.ID, Price: 10, Quantity: 1}},
	})
	require.NoError(t, err)
	return o
}

func TestAddShippingUpdate_OverwritesStatusAndNotifiesOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	o := placeTestOrder(t, env)

	u, err := env.orders.AddShippingUpdate(ctx, o.ID, ShippingUpdateRequest{
		Status:      "shipped",
		Location:    "الرياض",
		Description: "غادرت الشحنة المستودع",
	})
	require.NoError(t, err)
	assert.Equal(t, ShippingShipped, u.Status)
	assert.False(t, u.Timestamp.IsZero())

	stored, err := env.orders.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, ShippingShipped, stored.ShippingStatus)
	assert.Equal(t, 1, env.countNotifications(t, notification.TypeShippingUpdate))
}

func TestAddShippingUpdate_AssignsTrackingNumberOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	o := placeTestOrder(t, env)
	assert.Empty(t, o.TrackingNumber)

	_, err := env.orders.AddShippingUpdate(ctx, o.ID, ShippingUpdateRequest{Status: "preparing"})
	require.NoError(t, err)

	first, err := env.orders.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, first.TrackingNumber)

	_, err = env.orders.AddShippingUpdate(ctx, o.ID, ShippingUpdateRequest{Status: "shipped"})
	require.NoError(t, err)

	second, err := env.orders.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, first.TrackingNumber, second.TrackingNumber)
}

func TestAddShippingUpdate_UnknownOrderFails(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.orders.AddShippingUpdate(context.Background(), 999, ShippingUpdateRequest{Status: "shipped"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddShippingUpdate_StatusRequired(t *testing.T) {
	env := newTestEnv(t)
	o := placeTestOrder(t, env)
	_, err := env.orders.AddShippingUpdate(context.Background(), o.ID, ShippingUpdateRequest{})
	assert.ErrorContains(t, err, "status is required")
}

func TestListShippingUpdates_NewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	o := placeTestOrder(t, env)

	for _, status := range []string{"preparing", "shipped", "in_transit"} {
		_, err := env.orders.AddShippingUpdate(ctx, o.ID, ShippingUpdateRequest{Status: status})
		require.NoError(t, err)
	}

	updates, err := env.orders.ListShippingUpdates(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, updates, 3)
	assert.Equal(t, ShippingInTransit, updates[0].Status)
	assert.Equal(t, ShippingShipped, updates[1].Status)
	assert.Equal(t, ShippingPreparing, updates[2].Status)
	assert.True(t, !updates[0].Timestamp.Before(updates[1].Timestamp))
}

func TestListShippingUpdates_UnknownOrderFails(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.orders.ListShippingUpdates(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestShippingStatusLabel_FallsBackToRawValue(t *testing.T) {
	assert.Equal(t, "تم الشحن", ShippingStatusLabel(ShippingShipped))
	assert.Equal(t, "lost", ShippingStatusLabel(ShippingStatus("lost")))
}
