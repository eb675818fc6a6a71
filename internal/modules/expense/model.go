package expense

import "time"

// Expense is a single entry in the back-office expense ledger.
type Expense struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
}

// CreateExpenseRequest is the payload for recording an expense.
// Date defaults to now when omitted.
type CreateExpenseRequest struct {
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Date        *time.Time `json:"date,omitempty"`
}
