package repo

import (
	"fmt"

	"deposit_tracker/internal/domain"
	"deposit_tracker/internal/store"
	"deposit_tracker/internal/utils"

	"github.com/sirupsen/logrus"
)

// Defaults for the administrator seeded into an empty user collection.
const (
	seedAdminUsername = "admin"
	seedAdminPassword = "admin123"
	seedAdminEmail    = "admin@example.com"
)

// UserFields carries the mutable user attributes supplied by the admin
// forms. Password is the plaintext; it is hashed before storage.
type UserFields struct {
	Username string
	Email    string
	Password string
	Role     string
}

// Users is the user repository.
type Users struct {
	col *store.Collection[domain.User]
}

func NewUsers(col *store.Collection[domain.User]) *Users {
	return &Users{col: col}
}

// EnsureAdmin seeds the default administrator when the collection is
// empty, so a fresh install can always log in.
func (r *Users) EnsureAdmin() error {
	return r.col.Update(func(users []domain.User) ([]domain.User, error) {
		if len(users) > 0 {
			return users, nil
		}
		hash, err := utils.HashPassword(seedAdminPassword)
		if err != nil {
			return nil, err
		}
		logrus.WithField("username", seedAdminUsername).Info("Seeding default administrator")
		return append(users, domain.User{
			ID:        1,
			Username:  seedAdminUsername,
			Email:     seedAdminEmail,
			Password:  hash,
			Role:      "admin",
			CreatedAt: now(),
		}), nil
	})
}

// Authenticate matches the username case-sensitively and verifies the
// password against the stored hash. Any mismatch returns
// ErrBadCredentials without saying which field was wrong.
func (r *Users) Authenticate(username, password string) (domain.User, error) {
	users, err := r.col.Load()
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range users {
		if u.Username == username && utils.CheckPassword(u.Password, password) {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrBadCredentials
}

// Create validates and appends one user with a hashed password.
func (r *Users) Create(fields UserFields) (domain.User, error) {
	if fields.Username == "" || fields.Email == "" || fields.Password == "" {
		return domain.User{}, fmt.Errorf("username, email and password are required: %w", domain.ErrValidation)
	}
	hash, err := utils.HashPassword(fields.Password)
	if err != nil {
		return domain.User{}, err
	}
	role := fields.Role
	if role == "" {
		role = "user"
	}
	var created domain.User
	err = r.col.Update(func(users []domain.User) ([]domain.User, error) {
		for _, u := range users {
			if u.Username == fields.Username {
				return nil, fmt.Errorf("username %q already exists: %w", fields.Username, domain.ErrConflict)
			}
		}
		created = domain.User{
			ID:        store.NextID(users),
			Username:  fields.Username,
			Email:     fields.Email,
			Password:  hash,
			Role:      role,
			CreatedAt: now(),
		}
		return append(users, created), nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return created, nil
}

// Update merges the supplied fields into an existing user. The password
// is replaced only when a non-empty new value is supplied.
func (r *Users) Update(id int, fields UserFields) (domain.User, error) {
	var hash string
	if fields.Password != "" {
		var err error
		hash, err = utils.HashPassword(fields.Password)
		if err != nil {
			return domain.User{}, err
		}
	}
	var updated domain.User
	err := r.col.Update(func(users []domain.User) ([]domain.User, error) {
		idx := -1
		for i := range users {
			if users[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
		}
		for _, u := range users {
			if u.Username == fields.Username && u.ID != id {
				return nil, fmt.Errorf("username %q already exists: %w", fields.Username, domain.ErrConflict)
			}
		}
		users[idx].Username = fields.Username
		users[idx].Email = fields.Email
		users[idx].Role = fields.Role
		if hash != "" {
			users[idx].Password = hash
		}
		users[idx].UpdatedAt = now()
		updated = users[idx]
		return users, nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return updated, nil
}

// Delete removes one user by ID.
func (r *Users) Delete(id int) error {
	return r.col.Update(func(users []domain.User) ([]domain.User, error) {
		for i := range users {
			if users[i].ID == id {
				return append(users[:i], users[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	})
}

// List returns all users in insertion order.
func (r *Users) List() ([]domain.User, error) {
	return r.col.Load()
}

// Get returns one user by ID.
func (r *Users) Get(id int) (domain.User, error) {
	users, err := r.col.Load()
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
}
