package catalog

import (
	"context"
	"sort"
	"sync"
)

type memoryRepo struct {
	mu             sync.RWMutex
	nextProductID  int
	nextCategoryID int
	products       map[int]*Product
	categories     map[int]*Category
}

// NewMemoryRepository creates a volatile in-memory catalog store.
func NewMemoryRepository() Repository {
	return &memoryRepo{
		nextProductID:  1,
		nextCategoryID: 1,
		products:       make(map[int]*Product),
		categories:     make(map[int]*Category),
	}
}

func (r *memoryRepo) CreateProduct(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextProductID
	r.nextProductID++
	stored := *p
	r.products[p.ID] = &stored
	return nil
}

func (r *memoryRepo) GetProduct(ctx context.Context, id int) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *memoryRepo) ListProducts(ctx context.Context) ([]*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Product, 0, len(r.products))
	for _, p := range r.products {
		copied := *p
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryRepo) UpdateProduct(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return ErrNotFound
	}
	stored := *p
	r.products[p.ID] = &stored
	return nil
}

func (r *memoryRepo) DeleteProduct(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *memoryRepo) AdjustStock(ctx context.Context, id int, delta int) (*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	if p.Stock+delta < 0 {
		return nil, ErrInsufficientStock
	}
	p.Stock += delta
	copied := *p
	return &copied, nil
}

func (r *memoryRepo) ProductCodeExists(ctx context.Context, code string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepo) CreateCategory(ctx context.Context, c *Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextCategoryID
	r.nextCategoryID++
	stored := *c
	r.categories[c.ID] = &stored
	return nil
}

func (r *memoryRepo) ListCategories(ctx context.Context) ([]*Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Category, 0, len(r.categories))
	for _, c := range r.categories {
		copied := *c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryRepo) CategoryCodeExists(ctx context.Context, code string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if c.Code == code {
			return true, nil
		}
	}
	return false, nil
}
