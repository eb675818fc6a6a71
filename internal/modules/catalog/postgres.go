package catalog

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL catalog repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateProduct(ctx context.Context, p *Product) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO products
		  (name, code, description, category_id, wholesale_price, price, stock, image, min_stock_level)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id`,
		p.Name, p.Code, p.Description, p.CategoryID, p.WholesalePrice,
		p.Price, p.Stock, p.Image, p.MinStockLevel).Scan(&p.ID)
}

func scanProduct(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	err := scan(&p.ID, &p.Name, &p.Code, &p.Description, &p.CategoryID,
		&p.WholesalePrice, &p.Price, &p.Stock, &p.Image, &p.MinStockLevel)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) GetProduct(ctx context.Context, id int) (*Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, `
		SELECT id,name,code,description,category_id,wholesale_price,price,stock,image,min_stock_level
		FROM products WHERE id=$1`, id).Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *postgresRepo) ListProducts(ctx context.Context) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,name,code,description,category_id,wholesale_price,price,stock,image,min_stock_level
		FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) UpdateProduct(ctx context.Context, p *Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name=$1, code=$2, description=$3, category_id=$4, wholesale_price=$5,
		    price=$6, stock=$7, image=$8, min_stock_level=$9
		WHERE id=$10`,
		p.Name, p.Code, p.Description, p.CategoryID, p.WholesalePrice,
		p.Price, p.Stock, p.Image, p.MinStockLevel, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteProduct(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, id)
	return err
}

func (r *postgresRepo) AdjustStock(ctx context.Context, id int, delta int) (*Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, `
		UPDATE products SET stock = stock + $1
		WHERE id=$2 AND stock + $1 >= 0
		RETURNING id,name,code,description,category_id,wholesale_price,price,stock,image,min_stock_level`,
		delta, id).Scan)
	if err == sql.ErrNoRows {
		// Either the product is missing or the adjustment would go negative.
		if _, getErr := r.GetProduct(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, ErrInsufficientStock
	}
	return p, err
}

func (r *postgresRepo) ProductCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE code=$1)`, code).Scan(&exists)
	return exists, err
}

func (r *postgresRepo) CreateCategory(ctx context.Context, c *Category) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, code, description, parent_id)
		VALUES ($1,$2,$3,$4)
		RETURNING id`,
		c.Name, c.Code, c.Description, c.ParentID).Scan(&c.ID)
}

func (r *postgresRepo) ListCategories(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, code, description, parent_id FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		c := &Category{}
		var parentID sql.NullInt64
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Description, &parentID); err != nil {
			return nil, err
		}
		if parentID.Valid {
			id := int(parentID.Int64)
			c.ParentID = &id
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *postgresRepo) CategoryCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE code=$1)`, code).Scan(&exists)
	return exists, err
}
