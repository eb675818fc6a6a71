package notification

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL notification repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, n *Notification) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO notifications (type, message, is_read)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		n.Type, n.Message, n.IsRead).Scan(&n.ID, &n.CreatedAt)
}

func (r *postgresRepo) List(ctx context.Context) ([]*Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, type, message, is_read, created_at
		FROM notifications ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Notification
	for rows.Next() {
		n := &Notification{}
		if err := rows.Scan(&n.ID, &n.Type, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *postgresRepo) MarkRead(ctx context.Context, id int) error {
	// Absent ids update zero rows, which is fine.
	_, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read=true WHERE id=$1`, id)
	return err
}
