package domain

import "github.com/shopspring/decimal"

// Deposit Model
type Deposit struct {
	ID         int             `json:"id"`          // Unique identifier, assigned by the repository
	CustomerID int             `json:"customer_id"` // Owning customer; not enforced as a foreign key
	Amount     decimal.Decimal `json:"amount"`      // Strictly positive deposit amount
	Date       string          `json:"date"`        // Calendar date, YYYY-MM-DD
	Notes      string          `json:"notes"`       // Optional free text
	CreatedAt  string          `json:"created_at"`  // RFC 3339, set on create
}

// RecordID implements store.Record.
func (d Deposit) RecordID() int { return d.ID }

// DepositWithCustomer is a deposit joined with its owning customer's
// display fields for listing and export. CustomerName is "Unknown" when
// the customer id does not resolve.
type DepositWithCustomer struct {
	Deposit
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	LoanNumber    string `json:"loan_number"`
}
