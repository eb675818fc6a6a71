package order

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL order repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// CreateOrder inserts the order and all its items inside a single transaction.
func (r *postgresRepo) CreateOrder(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders
		  (customer_id, status, shipping_status, tracking_number,
		   shipping_address, shipping_city, shipping_country,
		   subtotal, discount, shipping_cost, total, profit)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING id, created_at, updated_at`,
		o.CustomerID, o.Status, nullableString(string(o.ShippingStatus)),
		nullableString(o.TrackingNumber), o.ShippingAddress, o.ShippingCity,
		o.ShippingCountry, o.Subtotal, o.Discount, o.ShippingCost,
		o.Total, o.Profit).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range o.Items {
		item.OrderID = o.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items
			  (order_id, product_id, quantity, wholesale_price, price, profit)
			VALUES ($1,$2,$3,$4,$5,$6)
			RETURNING id`,
			o.ID, item.ProductID, item.Quantity,
			item.WholesalePrice, item.Price, item.Profit).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("insert order_item: %w", err)
		}
	}

	return tx.Commit()
}

const orderColumns = `id, customer_id, status, shipping_status, tracking_number,
	shipping_address, shipping_city, shipping_country,
	subtotal, discount, shipping_cost, total, profit, created_at, updated_at`

func scanOrder(scan func(...interface{}) error) (*Order, error) {
	o := &Order{}
	var shippingStatus, trackingNumber sql.NullString
	err := scan(&o.ID, &o.CustomerID, &o.Status, &shippingStatus, &trackingNumber,
		&o.ShippingAddress, &o.ShippingCity, &o.ShippingCountry,
		&o.Subtotal, &o.Discount, &o.ShippingCost, &o.Total, &o.Profit,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.ShippingStatus = ShippingStatus(shippingStatus.String)
	o.TrackingNumber = trackingNumber.String
	return o, nil
}

func (r *postgresRepo) GetOrder(ctx context.Context, id int) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1`, id).Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	o.Items, err = r.ListItemsByOrder(ctx, o.ID)
	return o, err
}

func (r *postgresRepo) ListOrders(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *postgresRepo) UpdateOrder(ctx context.Context, o *Order) error {
	o.UpdatedAt = time.Now()
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status=$1, shipping_status=$2, tracking_number=$3,
		    shipping_address=$4, shipping_city=$5, shipping_country=$6,
		    subtotal=$7, discount=$8, shipping_cost=$9, total=$10, profit=$11,
		    updated_at=$12
		WHERE id=$13`,
		o.Status, nullableString(string(o.ShippingStatus)), nullableString(o.TrackingNumber),
		o.ShippingAddress, o.ShippingCity, o.ShippingCountry,
		o.Subtotal, o.Discount, o.ShippingCost, o.Total, o.Profit,
		o.UpdatedAt, o.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepo) ListOrderItems(ctx context.Context) ([]*OrderItem, error) {
	return r.queryItems(ctx, `
		SELECT id, order_id, product_id, quantity, wholesale_price, price, profit
		FROM order_items ORDER BY id`)
}

func (r *postgresRepo) ListItemsByOrder(ctx context.Context, orderID int) ([]*OrderItem, error) {
	return r.queryItems(ctx, `
		SELECT id, order_id, product_id, quantity, wholesale_price, price, profit
		FROM order_items WHERE order_id=$1 ORDER BY id`, orderID)
}

func (r *postgresRepo) queryItems(ctx context.Context, query string, args ...interface{}) ([]*OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*OrderItem
	for rows.Next() {
		item := &OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
			&item.Quantity, &item.WholesalePrice, &item.Price, &item.Profit); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresRepo) CreateShippingUpdate(ctx context.Context, u *OrderShippingUpdate) error {
	if u.Timestamp.IsZero() {
		u.Timestamp = time.Now()
	}
	return r.db.QueryRowContext(ctx, `
		INSERT INTO order_shipping_updates (order_id, status, location, description, timestamp)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`,
		u.OrderID, u.Status, nullableString(u.Location), u.Description, u.Timestamp).Scan(&u.ID)
}

func (r *postgresRepo) ListShippingUpdates(ctx context.Context, orderID int) ([]*OrderShippingUpdate, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, status, location, description, timestamp
		FROM order_shipping_updates
		WHERE order_id=$1 ORDER BY timestamp DESC, id DESC`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var updates []*OrderShippingUpdate
	for rows.Next() {
		u := &OrderShippingUpdate{}
		var location sql.NullString
		if err := rows.Scan(&u.ID, &u.OrderID, &u.Status, &location, &u.Description, &u.Timestamp); err != nil {
			return nil, err
		}
		u.Location = location.String
		updates = append(updates, u)
	}
	return updates, rows.Err()
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
