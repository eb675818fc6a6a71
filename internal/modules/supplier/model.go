package supplier

// Supplier is a wholesale source for catalog products.
type Supplier struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateSupplierRequest is the payload for creating a supplier.
type CreateSupplierRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UpdateSupplierRequest is a shallow patch: only non-nil fields are applied.
type UpdateSupplierRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}
