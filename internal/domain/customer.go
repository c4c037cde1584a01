package domain

// Customer Model
type Customer struct {
	ID         int    `json:"id"`          // Unique identifier, assigned by the repository
	Name       string `json:"name"`        // Required display name
	Phone      string `json:"phone"`       // Optional contact phone
	Email      string `json:"email"`       // Optional contact email
	LoanNumber string `json:"loan_number"` // Optional loan reference
	Address    string `json:"address"`     // Optional postal address
	CreatedAt  string `json:"created_at"`  // RFC 3339, set on create
	UpdatedAt  string `json:"updated_at,omitempty"` // RFC 3339, set on update
}

// RecordID implements store.Record.
func (c Customer) RecordID() int { return c.ID }
