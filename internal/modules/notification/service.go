package notification

import "context"

// Service defines the notification feed business logic.
type Service interface {
	// Notify appends a new unread notification to the feed.
	Notify(ctx context.Context, typ Type, message string) (*Notification, error)

	// List returns the feed, newest first.
	List(ctx context.Context) ([]*Notification, error)

	// MarkRead marks a notification as read. Missing ids are tolerated silently.
	MarkRead(ctx context.Context, id int) error
}

type service struct{ repo Repository }

// NewService creates a new notification service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Notify(ctx context.Context, typ Type, message string) (*Notification, error) {
	n := &Notification{Type: typ, Message: message}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *service) List(ctx context.Context) ([]*Notification, error) {
	return s.repo.List(ctx)
}

func (s *service) MarkRead(ctx context.Context, id int) error {
	return s.repo.MarkRead(ctx, id)
}
