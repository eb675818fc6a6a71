package customer

import (
	"context"
	"sort"
	"sync"
)

type memoryRepo struct {
	mu     sync.RWMutex
	nextID int
	items  map[int]*Customer
}

// NewMemoryRepository creates a volatile in-memory customer store.
func NewMemoryRepository() Repository {
	return &memoryRepo{nextID: 1, items: make(map[int]*Customer)}
}

func (r *memoryRepo) Create(ctx context.Context, c *Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	r.nextID++
	stored := *c
	r.items[c.ID] = &stored
	return nil
}

func (r *memoryRepo) Get(ctx context.Context, id int) (*Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *memoryRepo) List(ctx context.Context) ([]*Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Customer, 0, len(r.items))
	for _, c := range r.items {
		copied := *c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryRepo) Update(ctx context.Context, c *Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; !ok {
		return ErrNotFound
	}
	stored := *c
	r.items[c.ID] = &stored
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *memoryRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.Email == email {
			return true, nil
		}
	}
	return false, nil
}
