package domain

// User Model
type User struct {
	ID        int    `json:"id"`       // Unique identifier, assigned by the repository
	Username  string `json:"username"` // Unique, matched case-sensitively
	Email     string `json:"email"`
	Password  string `json:"password"` // bcrypt hash, never the plaintext
	Role      string `json:"role"`     // Free text, "admin" unlocks user management
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// RecordID implements store.Record.
func (u User) RecordID() int { return u.ID }
