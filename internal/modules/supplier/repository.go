package supplier

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a supplier id does not exist.
var ErrNotFound = errors.New("supplier not found")

// Repository defines data access for suppliers.
type Repository interface {
	Create(ctx context.Context, s *Supplier) error
	Get(ctx context.Context, id int) (*Supplier, error)
	List(ctx context.Context) ([]*Supplier, error)
	Update(ctx context.Context, s *Supplier) error

	// Delete removes a supplier. Absent ids are a silent no-op.
	Delete(ctx context.Context, id int) error

	EmailExists(ctx context.Context, email string) (bool, error)
}
