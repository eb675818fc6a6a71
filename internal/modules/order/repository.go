package order

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an order id does not exist.
var ErrNotFound = errors.New("order not found")

// Repository defines data access for orders, order items and shipping updates.
type Repository interface {
	// CreateOrder persists a new order together with all its items as a
	// single unit: readers never observe the order without its items.
	CreateOrder(ctx context.Context, o *Order) error

	// GetOrder retrieves an order with its items.
	GetOrder(ctx context.Context, id int) (*Order, error)

	// ListOrders returns all orders, newest first, without items.
	ListOrders(ctx context.Context) ([]*Order, error)

	// UpdateOrder overwrites the order record (items are untouched).
	UpdateOrder(ctx context.Context, o *Order) error

	// ListOrderItems returns every order item across all orders.
	ListOrderItems(ctx context.Context) ([]*OrderItem, error)

	// ListItemsByOrder returns the items belonging to one order.
	ListItemsByOrder(ctx context.Context, orderID int) ([]*OrderItem, error)

	// CreateShippingUpdate appends a tracking entry for an order.
	CreateShippingUpdate(ctx context.Context, u *OrderShippingUpdate) error

	// ListShippingUpdates returns an order's tracking entries, newest first.
	ListShippingUpdates(ctx context.Context, orderID int) ([]*OrderShippingUpdate, error)
}
