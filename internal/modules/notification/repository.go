package notification

import "context"

// Repository defines data access for the notification feed.
type Repository interface {
	// Create persists a new notification and assigns its id.
	Create(ctx context.Context, n *Notification) error

	// List returns all notifications, newest first.
	List(ctx context.Context) ([]*Notification, error)

	// MarkRead flags a notification as read. Absent ids are a silent no-op.
	MarkRead(ctx context.Context, id int) error
}
