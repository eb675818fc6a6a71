package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souqline/souq-backend/internal/modules/catalog"
	"github.com/souqline/souq-backend/internal/modules/customer"
	"github.com/souqline/souq-backend/internal/modules/notification"
)

type testEnv struct {
	orders    Service
	catalog   catalog.Service
	customers customer.Service
	notifs    notification.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	notifs := notification.NewService(notification.NewMemoryRepository())
	catalogSvc := catalog.NewService(catalog.NewMemoryRepository(), notifs, catalog.NotifyAlways)
	customerSvc := customer.NewService(customer.NewMemoryRepository())
	orderSvc := NewService(NewMemoryRepository(), catalogSvc, customerSvc, notifs)
	return &testEnv{orders: orderSvc, catalog: catalogSvc, customers: customerSvc, notifs: notifs}
}

func (e *testEnv) addCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := e.customers.Create(context.Background(), customer.CreateCustomerRequest{
		Name: "Amina", Email: "amina@example.com", Phone: "0555000111",
	})
	require.NoError(t, err)
	return c
}

func (e *testEnv) addProduct(t *testing.T, code string, wholesale, price float64, stock, minStock int) *catalog.Product {
	t.Helper()
	p, err := e.catalog.CreateProduct(context.Background(), catalog.CreateProductRequest{
		Name:           "Product " + code,
		Code:           code,
		WholesalePrice: wholesale,
		Price:          price,
		Stock:          stock,
		MinStockLevel:  &minStock,
	})
	require.NoError(t, err)
	return p
}

func (e *testEnv) countNotifications(t *testing.T, typ notification.Type) int {
	t.Helper()
	all, err := e.notifs.List(context.Background())
	require.NoError(t, err)
	n := 0
	for _, item := range all {
		if item.Type == typ {
			n++
		}
	}
	return n
}

func TestPlaceOrder_TotalsProfitAndStock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := env.addCustomer(t)
	p := env.addProduct(t, "SP001", 20.00, 29.99, 100, 10)

	o, err := env.orders.PlaceOrder(ctx, PlaceOrderRequest{
		CustomerID: c.ID,
		Items:      []LineItem{{ProductID: p.ID, Price: 29.99, Quantity: 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPending, o.Status)
	assert.InDelta(t, 89.97, o.Subtotal, 0.001)
	assert.InDelta(t, 89.97, o.Total, 0.001)
	assert.InDelta(t, 29.97, o.Profit, 0.001)
	require.Len(t, o.Items, 1)
	assert.InDelta(t, 20.00, o.Items[0].WholesalePrice, 0.001)
	assert.InDelta(t, 29.99, o.Items[0].Price, 0.001)
	assert.InDelta(t, 29.97, o.Items[0].Profit, 0.001)

	got, err := env.catalog.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 97, got.Stock)

	assert.Equal(t, 1, env.countNotifications(t, notification.TypeNewOrder))
}

func TestPlaceOrder_DiscountAppliedToTotal(t *testing.T) {
	env := newTestEnv(t)
	c := env.addCustomer(t)
	p := env.addProduct(t, "SP002", 10.00, 25.00, 50, 5)

	o, err := env.orders.PlaceOrder(context.Background(), PlaceOrderRequest{
		CustomerID: c.ID,
		Items:      []LineItem{{ProductID: p.ID, Price: 25.00, Quantity: 4}},
		Discount:   10,
	})
	require.NoError(t, err)

	assert.InDelta(t, 100.00, o.Subtotal, 0.001)
	assert.InDelta(t, 90.00, o.Total, 0.001)
}

func TestPlaceOrder_ProfitSumsAllLines(t *testing.T) {
	env := newTestEnv(t)
	c := env.addCustomer(t)
	a := env.addProduct(t, "A1", 5.00, 8.00, 20, 2)
	b := env.addProduct(t, "B1", 12.00, 20.00, 20, 2)

	o, err := env.orders.PlaceOrder(context.Background(), PlaceOrderRequest{
		CustomerID: c.ID,
		Items: []LineItem{
			{ProductID: a.ID, Price: 8.00, Quantity: 2},  // profit 6.00
			{ProductID: b.ID, Price: 20.00, Quantity: 3}, // profit 24.00
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 30.00, o.Profit, 0.001)
}

func TestPlaceOrder_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := env.addCustomer(t)
	p := env.addProduct(t, "SP003", 5, 10, 10, 2)

	tests := []struct {
		name string
		req  PlaceOrderRequest
	}{
		{"empty items", PlaceOrderRequest{CustomerID: c.ID}},
		{"zero quantity", PlaceOrderRequest{CustomerID: c.ID,
			Items: []LineItem{{ProductID: p.ID, Price: 10, Quantity: 0}}}},
		{"discount above 100", PlaceOrderRequest{CustomerID: c.ID,
			Items: []LineItem{{ProductID: p.ID, Price: 10, Quantity: 1}}, Discount: 150}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.orders.PlaceOrder(ctx, tc.req)
			assert.Error(t, err)
		})
	}
}

func TestPlaceOrder_UnknownCustomerRejected(t *testing.T) {
	env := newTestEnv(t)
	p := env.addProduct(t, "SP004", 5, 10, 10, 2)

	_, err := env.orders.PlaceOrder(context.Background(), PlaceOrderRequest{
		CustomerID: 999,
		Items:      []LineItem{{ProductID: p.ID, Price: 10, Quantity: 1}},
	})
	assert.ErrorIs(t, err, customer.ErrNotFound)
}

func TestPlaceOrder_MissingProductAbortsWholeOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := env.addCustomer(t)
	p := env.addProduct(t, "SP005", 5, 10, 10, 2)

	_, err := env.orders.PlaceOrder(ctx, PlaceOrderRequest{
		CustomerID: c.ID,
		Items: []LineItem{
			{ProductID: p.ID, Price: 10, Quantity: 2},
			{ProductID: 999, Price: 10, Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	// Nothing was persisted or decremented.
	orders, err := env.orders.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
	got, err := env.catalog.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Stock)
}

func TestPlaceOrder_InsufficientStockRestoresDecrements(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := env.addCustomer(t)
	a := env.addProduct(t, "A2", 5, 10, 10, 2)
	b := env.addProduct(t, "B2", 5, 10, 1, 0)

	_, err := env.orders.PlaceOrder(ctx, PlaceOrderRequest{
		CustomerID: c.ID,
		Items: []LineItem{
			{ProductID: a.ID, Price: 10, Quantity: 5},
			{ProductID: b.ID, Price: 10, Quantity: 5},
		},
	})
	assert.ErrorIs(t, err, catalog.ErrInsufficientStock)

	gotA, err := env.catalog.GetProduct(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, gotA.Stock)
	gotB, err := env.catalog.GetProduct(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotB.Stock)

	orders, err := env.orders.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Zero(t, env.countNotifications(t, notification.TypeNewOrder))
}

func TestPlaceOrder_CrossingThresholdEmitsLowStock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := env.addCustomer(t)
	p := env.addProduct(t, "SP006", 20.00, 29.99, 100, 10)

	_, err := env.orders.PlaceOrder(ctx, PlaceOrderRequest{
		CustomerID: c.ID,
		Items:      []LineItem{{ProductID: p.ID, Price: 29.99, Quantity: 95}},
	})
	require.NoError(t, err)

	got, err := env.catalog.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)
	assert.Equal(t, 1, env.countNotifications(t, notification.TypeLowStock))

	// A later unrelated patch re-emits while still below threshold.
	desc := "updated description"
	_, err = env.catalog.UpdateProduct(ctx, p.ID, catalog.UpdateProductRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, 2, env.countNotifications(t, notification.TypeLowStock))
}

func TestPlaceOrder_PriceSnapshotSurvivesCatalogEdits(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := env.addCustomer(t)
	p := env.addProduct(t, "SP007", 20.00, 29.99, 50, 5)

	o, err := env.orders.PlaceOrder(ctx, PlaceOrderRequest{
		CustomerID: c.ID,
		Items:      []LineItem{{ProductID: p.ID, Price: 29.99, Quantity: 1}},
	})
	require.NoError(t, err)

	newPrice := 99.99
	newWholesale := 50.00
	_, err = env.catalog.UpdateProduct(ctx, p.ID, catalog.UpdateProductRequest{
		Price: &newPrice, WholesalePrice: &newWholesale,
	})
	require.NoError(t, err)

	stored, err := env.orders.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.InDelta(t, 29.99, stored.Items[0].Price, 0.001)
	assert.InDelta(t, 20.00, stored.Items[0].WholesalePrice, 0.001)
	assert.InDelta(t, 9.99, stored.Items[0].Profit, 0.001)
}

func TestPatchOrder_StatusChangeEmitsLabelledNotification(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := env.addCustomer(t)
	p := env.addProduct(t, "SP008", 5, 10, 10, 2)

	o, err := env.orders.PlaceOrder(ctx, PlaceOrderRequest{
		CustomerID: c.ID,
		Items:      []LineItem{{ProductID: p.ID, Price: 10, Quantity: 1}},
	})
	require.NoError(t, err)

	status := "completed"
	patched, err := env.orders.PatchOrder(ctx, o.ID, PatchOrderRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, patched.Status)

	assert.Equal(t, 1, env.countNotifications(t, notification.TypeOrderStatus))
	all, err := env.notifs.List(ctx)
	require.NoError(t, err)
	var msg string
	for _, n := range all {
		if n.Type == notification.TypeOrderStatus {
			msg = n.Message
		}
	}
	assert.Contains(t, msg, "مكتمل")
}

func TestPatchOrder_SameStatusDoesNotNotify(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := env.addCustomer(t)
	p := env.addProduct(t, "SP009", 5, 10, 10, 2)

	o, err := env.orders.PlaceOrder(ctx, PlaceOrderRequest{
		CustomerID: c.ID,
		Items:      []LineItem{{ProductID: p.ID, Price: 10, Quantity: 1}},
	})
	require.NoError(t, err)

	status := "pending"
	_, err = env.orders.PatchOrder(ctx, o.ID, PatchOrderRequest{Status: &status})
	require.NoError(t, err)
	assert.Zero(t, env.countNotifications(t, notification.TypeOrderStatus))
}

func TestPatchOrder_UnknownStatusAcceptedWithEmptyLabel(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := env.addCustomer(t)
	p := env.addProduct(t, "SP010", 5, 10, 10, 2)

	o, err := env.orders.PlaceOrder(ctx, PlaceOrderRequest{
		CustomerID: c.ID,
		Items:      []LineItem{{ProductID: p.ID, Price: 10, Quantity: 1}},
	})
	require.NoError(t, err)

	status := "archived"
	patched, err := env.orders.PatchOrder(ctx, o.ID, PatchOrderRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, OrderStatus("archived"), patched.Status)
	assert.Empty(t, StatusLabel(patched.Status))
	assert.Equal(t, 1, env.countNotifications(t, notification.TypeOrderStatus))
}

func TestPatchOrder_NotFound(t *testing.T) {
	env := newTestEnv(t)
	status := "completed"
	_, err := env.orders.PatchOrder(context.Background(), 999, PatchOrderRequest{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrderItems_FlatAcrossOrders(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := env.addCustomer(t)
	a := env.addProduct(t, "A3", 5, 10, 50, 2)
	b := env.addProduct(t, "B3", 5, 10, 50, 2)

	for _, pid := range []int{a.ID, b.ID} {
		_, err := env.orders.PlaceOrder(ctx, PlaceOrderRequest{
			CustomerID: c.ID,
			Items:      []LineItem{{ProductID: pid, Price: 10, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	items, err := env.orders.ListOrderItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
