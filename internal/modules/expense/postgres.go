package expense

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL expense repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, e *Expense) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO expenses (description, amount, date)
		VALUES ($1,$2,$3)
		RETURNING id`,
		e.Description, e.Amount, e.Date).Scan(&e.ID)
}

func (r *postgresRepo) List(ctx context.Context) ([]*Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, description, amount, date FROM expenses ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		e := &Expense{}
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.Date); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
