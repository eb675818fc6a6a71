package notification

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memoryRepo struct {
	mu     sync.RWMutex
	nextID int
	items  map[int]*Notification
}

// NewMemoryRepository creates a volatile in-memory notification store.
func NewMemoryRepository() Repository {
	return &memoryRepo{nextID: 1, items: make(map[int]*Notification)}
}

func (r *memoryRepo) Create(ctx context.Context, n *Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n.ID = r.nextID
	r.nextID++
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	stored := *n
	r.items[n.ID] = &stored
	return nil
}

func (r *memoryRepo) List(ctx context.Context) ([]*Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Notification, 0, len(r.items))
	for _, n := range r.items {
		copied := *n
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memoryRepo) MarkRead(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n, ok := r.items[id]; ok {
		n.IsRead = true
	}
	return nil
}
