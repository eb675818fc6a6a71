package supplier

import (
	"context"
	"fmt"
)

// Service defines supplier business logic.
type Service interface {
	Create(ctx context.Context, req CreateSupplierRequest) (*Supplier, error)
	Get(ctx context.Context, id int) (*Supplier, error)
	List(ctx context.Context) ([]*Supplier, error)
	Update(ctx context.Context, id int, req UpdateSupplierRequest) (*Supplier, error)
	Delete(ctx context.Context, id int) error
}

type service struct{ repo Repository }

// NewService creates a new supplier service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, req CreateSupplierRequest) (*Supplier, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if req.Phone == "" {
		return nil, fmt.Errorf("phone is required")
	}
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("email %q is already in use", req.Email)
	}

	sup := &Supplier{Name: req.Name, Email: req.Email, Phone: req.Phone}
	if err := s.repo.Create(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *service) Get(ctx context.Context, id int) (*Supplier, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Supplier, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id int, req UpdateSupplierRequest) (*Supplier, error) {
	sup, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("name is required")
		}
		sup.Name = *req.Name
	}
	if req.Email != nil {
		if *req.Email == "" {
			return nil, fmt.Errorf("email is required")
		}
		if *req.Email != sup.Email {
			exists, err := s.repo.EmailExists(ctx, *req.Email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, fmt.Errorf("email %q is already in use", *req.Email)
			}
		}
		sup.Email = *req.Email
	}
	if req.Phone != nil {
		sup.Phone = *req.Phone
	}
	if err := s.repo.Update(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
