package supplier

import (
	"context"
	"sort"
	"sync"
)

type memoryRepo struct {
	mu     sync.RWMutex
	nextID int
	items  map[int]*Supplier
}

// NewMemoryRepository creates a volatile in-memory supplier store.
func NewMemoryRepository() Repository {
	return &memoryRepo{nextID: 1, items: make(map[int]*Supplier)}
}

func (r *memoryRepo) Create(ctx context.Context, s *Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = r.nextID
	r.nextID++
	stored := *s
	r.items[s.ID] = &stored
	return nil
}

func (r *memoryRepo) Get(ctx context.Context, id int) (*Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *memoryRepo) List(ctx context.Context) ([]*Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Supplier, 0, len(r.items))
	for _, s := range r.items {
		copied := *s
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryRepo) Update(ctx context.Context, s *Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[s.ID]; !ok {
		return ErrNotFound
	}
	stored := *s
	r.items[s.ID] = &stored
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
	for _, s := range r.items {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}
