package customer

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a customer id does not exist.
var ErrNotFound = errors.New("customer not found")

// Repository defines data access for customers.
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	Get(ctx context.Context, id int) (*Customer, error)
	List(ctx context.Context) ([]*Customer, error)
	Update(ctx context.Context, c *Customer) error

	// Delete removes a customer. Absent ids are a silent no-op.
	Delete(ctx context.Context, id int) error

	EmailExists(ctx context.Context, email string) (bool, error)
}
