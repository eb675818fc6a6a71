package expense

import (
	"context"
	"sort"
	"sync"
)

type memoryRepo struct {
	mu     sync.RWMutex
	nextID int
	items  map[int]*Expense
}

// NewMemoryRepository creates a volatile in-memory expense store.
func NewMemoryRepository() Repository {
	return &memoryRepo{nextID: 1, items: make(map[int]*Expense)}
}

func (r *memoryRepo) Create(ctx context.Context, e *Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.nextID
	r.nextID++
	stored := *e
	r.items[e.ID] = &stored
	return nil
}

func (r *memoryRepo) List(ctx context.Context) ([]*Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Expense, 0, len(r.items))
	for _, e := range r.items {
		copied := *e
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID > out[j].ID
		}
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}
