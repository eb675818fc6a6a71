package catalog

// Product is a sellable item in the storefront catalog.
type Product struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Code           string  `json:"code"`
	Description    string  `json:"description"`
	CategoryID     int     `json:"categoryId"`
	WholesalePrice float64 `json:"wholesalePrice"`
	Price          float64 `json:"price"`
	Stock          int     `json:"stock"`
	Image          string  `json:"image"`
	MinStockLevel  int     `json:"minStockLevel"`
}

// Category groups products. ParentID is set for second-level categories.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	ParentID    *int   `json:"parent_id,omitempty"`
}

// CreateProductRequest is the payload for creating a product.
type CreateProductRequest struct {
	Name           string  `json:"name"`
	Code           string  `json:"code"`
	Description    string  `json:"description"`
	CategoryID     int     `json:"categoryId"`
	WholesalePrice float64 `json:"wholesalePrice"`
	Price          float64 `json:"price"`
	Stock          int     `json:"stock"`
	Image          string  `json:"image"`
	MinStockLevel  *int    `json:"minStockLevel,omitempty"` // defaults to 10
}

// UpdateProductRequest is a shallow patch: only non-nil fields are applied.
type UpdateProductRequest struct {
	Name           *string  `json:"name,omitempty"`
	Code           *string  `json:"code,omitempty"`
	Description    *string  `json:"description,omitempty"`
	CategoryID     *int     `json:"categoryId,omitempty"`
	WholesalePrice *float64 `json:"wholesalePrice,omitempty"`
	Price          *float64 `json:"price,omitempty"`
	Stock          *int     `json:"stock,omitempty"`
	Image          *string  `json:"image,omitempty"`
	MinStockLevel  *int     `json:"minStockLevel,omitempty"`
}

// CreateCategoryRequest is the payload for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	ParentID    *int   `json:"parent_id,omitempty"`
}
