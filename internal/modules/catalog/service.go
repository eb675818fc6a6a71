package catalog

import (
	"context"
	"fmt"

	"github.com/souqline/souq-backend/internal/modules/notification"
)

// Notifier is the slice of the notification service the catalog needs.
type Notifier interface {
	Notify(ctx context.Context, typ notification.Type, message string) (*notification.Notification, error)
}

// LowStockNotifyMode controls when low-stock alerts are emitted.
type LowStockNotifyMode string

const (
	// NotifyAlways re-emits on every product update while stock is at or
	// below the threshold, duplicates included.
	NotifyAlways LowStockNotifyMode = "always"

	// NotifyOnCrossing emits only when an update moves stock from above the
	// threshold to at or below it.
	NotifyOnCrossing LowStockNotifyMode = "on_crossing"
)

// Service defines catalog business logic.
type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id int) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	UpdateProduct(ctx context.Context, id int, req UpdateProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id int) error

	// AdjustStock adds delta to a product's stock, rejecting adjustments that
	// would drive it negative, and runs the low-stock check.
	AdjustStock(ctx context.Context, id int, delta int) (*Product, error)

	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
}

type service struct {
	repo       Repository
	notifier   Notifier
	notifyMode LowStockNotifyMode
}

// NewService creates a new catalog service.
func NewService(repo Repository, notifier Notifier, notifyMode LowStockNotifyMode) Service {
	if notifyMode != NotifyOnCrossing {
		notifyMode = NotifyAlways
	}
	return &service{repo: repo, notifier: notifier, notifyMode: notifyMode}
}

const defaultMinStockLevel = 10

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Code == "" {
		return nil, fmt.Errorf("code is required")
	}
	if req.Price < 0 || req.WholesalePrice < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("stock must not be negative")
	}
	exists, err := s.repo.ProductCodeExists(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("product code %q is already in use", req.Code)
	}

	minStock := defaultMinStockLevel
	if req.MinStockLevel != nil {
		if *req.MinStockLevel < 0 {
			return nil, fmt.Errorf("minStockLevel must not be negative")
		}
		minStock = *req.MinStockLevel
	}

	p := &Product{
		Name:           req.Name,
		Code:           req.Code,
		Description:    req.Description,
		CategoryID:     req.CategoryID,
		WholesalePrice: req.WholesalePrice,
		Price:          req.Price,
		Stock:          req.Stock,
		Image:          req.Image,
		MinStockLevel:  minStock,
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id int) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.ListProducts(ctx)
}

// UpdateProduct applies a shallow merge-patch. Supplied fields are validated
// the same way creation validates them. Every update re-runs the low-stock
// check, whether or not stock changed.
func (s *service) UpdateProduct(ctx context.Context, id int, req UpdateProductRequest) (*Product, error) {
	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	prevStock := p.Stock

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("name is required")
		}
		p.Name = *req.Name
	}
	if req.Code != nil {
		if *req.Code == "" {
			return nil, fmt.Errorf("code is required")
		}
		if *req.Code != p.Code {
			exists, err := s.repo.ProductCodeExists(ctx, *req.Code)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, fmt.Errorf("product code %q is already in use", *req.Code)
			}
		}
		p.Code = *req.Code
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.CategoryID != nil {
		p.CategoryID = *req.CategoryID
	}
	if req.WholesalePrice != nil {
		if *req.WholesalePrice < 0 {
			return nil, fmt.Errorf("price must not be negative")
		}
		p.WholesalePrice = *req.WholesalePrice
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("price must not be negative")
		}
		p.Price = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, fmt.Errorf("stock must not be negative")
		}
		p.Stock = *req.Stock
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.MinStockLevel != nil {
		if *req.MinStockLevel < 0 {
			return nil, fmt.Errorf("minStockLevel must not be negative")
		}
		p.MinStockLevel = *req.MinStockLevel
	}

	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}
	s.checkLowStock(ctx, p, prevStock)
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id int) error {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *service) AdjustStock(ctx context.Context, id int, delta int) (*Product, error) {
	prev, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.AdjustStock(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	s.checkLowStock(ctx, p, prev.Stock)
	return p, nil
}

func (s *service) checkLowStock(ctx context.Context, p *Product, prevStock int) {
	if p.Stock > p.MinStockLevel {
		return
	}
	if s.notifyMode == NotifyOnCrossing && prevStock <= p.MinStockLevel {
		return
	}
	s.notifier.Notify(ctx, notification.TypeLowStock,
		fmt.Sprintf("المنتج %s منخفض المخزون (%d وحدة متبقية)", p.Name, p.Stock))
}

func (s *service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Code == "" {
		return nil, fmt.Errorf("code is required")
	}
	exists, err := s.repo.CategoryCodeExists(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("category code %q is already in use", req.Code)
	}

	c := &Category{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		ParentID:    req.ParentID,
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}
