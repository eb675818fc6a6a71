package expense

import (
	"context"
	"fmt"
	"time"
)

// Service defines expense ledger business logic.
type Service interface {
	Create(ctx context.Context, req CreateExpenseRequest) (*Expense, error)
	List(ctx context.Context) ([]*Expense, error)
}

type service struct{ repo Repository }

// NewService creates a new expense service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, req CreateExpenseRequest) (*Expense, error) {
	if req.Description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than zero")
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}
	e := &Expense{Description: req.Description, Amount: req.Amount, Date: date}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) List(ctx context.Context) ([]*Expense, error) {
	return s.repo.List(ctx)
}
