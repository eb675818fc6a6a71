package user

import (
	"context"
	"sync"
)

type memoryRepo struct {
	mu     sync.RWMutex
	nextID int
	users  map[int]*User
}

// NewMemoryRepository creates a volatile in-memory user store.
func NewMemoryRepository() Repository {
	return &memoryRepo{nextID: 1, users: make(map[int]*User)}
}

func (r *memoryRepo) CreateUser(ctx context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = r.nextID
	r.nextID++
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *memoryRepo) GetUserByID(ctx context.Context, id int) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *memoryRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}
