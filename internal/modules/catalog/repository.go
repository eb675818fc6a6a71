package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a product or category id does not exist.
var ErrNotFound = errors.New("product not found")

// ErrInsufficientStock is returned when a stock adjustment would go below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// Repository defines data access for products and categories.
type Repository interface {
	CreateProduct(ctx context.Context, p *Product) error
	GetProduct(ctx context.Context, id int) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)

	// UpdateProduct overwrites the full product record.
	UpdateProduct(ctx context.Context, p *Product) error

	// DeleteProduct removes a product. Absent ids are a silent no-op.
	DeleteProduct(ctx context.Context, id int) error

	// AdjustStock atomically adds delta to the product's stock and returns the
	// updated record. Fails with ErrInsufficientStock if the result would be
	// negative.
	AdjustStock(ctx context.Context, id int, delta int) (*Product, error)

	// ProductCodeExists reports whether any product already uses the code.
	ProductCodeExists(ctx context.Context, code string) (bool, error)

	CreateCategory(ctx context.Context, c *Category) error
	ListCategories(ctx context.Context) ([]*Category, error)
	CategoryCodeExists(ctx context.Context, code string) (bool, error)
}
