package order

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memoryRepo struct {
	mu           sync.RWMutex
	nextOrderID  int
	nextItemID   int
	nextUpdateID int
	orders       map[int]*Order
	items        map[int]*OrderItem
	updates      map[int]*OrderShippingUpdate
}

// NewMemoryRepository creates a volatile in-memory order store.
func NewMemoryRepository() Repository {
	return &memoryRepo{
		nextOrderID:  1,
		nextItemID:   1,
		nextUpdateID: 1,
		orders:       make(map[int]*Order),
		items:        make(map[int]*OrderItem),
		updates:      make(map[int]*OrderShippingUpdate),
	}
}

// CreateOrder assigns ids and stores the order and its items under one lock,
// so no reader sees the order in a half-written state.
func (r *memoryRepo) CreateOrder(ctx context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = r.nextOrderID
	r.nextOrderID++
	now := time.Now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = now
	}

	for _, item := range o.Items {
		item.ID = r.nextItemID
		r.nextItemID++
		item.OrderID = o.ID
		stored := *item
		r.items[item.ID] = &stored
	}

	stored := *o
	stored.Items = nil
	r.orders[o.ID] = &stored
	return nil
}

func (r *memoryRepo) GetOrder(ctx context.Context, id int) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *o
	copied.Items = r.itemsByOrderLocked(id)
	return &copied, nil
}

func (r *memoryRepo) ListOrders(ctx context.Context) ([]*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Order, 0, len(r.orders))
	for _, o := range r.orders {
		copied := *o
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memoryRepo) UpdateOrder(ctx context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID]; !ok {
		return ErrNotFound
	}
	stored := *o
	stored.Items = nil
	r.orders[o.ID] = &stored
	return nil
}

func (r *memoryRepo) ListOrderItems(ctx context.Context) ([]*OrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*OrderItem, 0, len(r.items))
	for _, item := range r.items {
		copied := *item
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryRepo) ListItemsByOrder(ctx context.Context, orderID int) ([]*OrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.itemsByOrderLocked(orderID), nil
}

func (r *memoryRepo) itemsByOrderLocked(orderID int) []*OrderItem {
	var out []*OrderItem
	for _, item := range r.items {
		if item.OrderID == orderID {
			copied := *item
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *memoryRepo) CreateShippingUpdate(ctx context.Context, u *OrderShippingUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = r.nextUpdateID
	r.nextUpdateID++
	if u.Timestamp.IsZero() {
		u.Timestamp = time.Now()
	}
	stored := *u
	r.updates[u.ID] = &stored
	return nil
}

func (r *memoryRepo) ListShippingUpdates(ctx context.Context, orderID int) ([]*OrderShippingUpdate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*OrderShippingUpdate
	for _, u := range r.updates {
		if u.OrderID == orderID {
			copied := *u
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID > out[j].ID
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}
