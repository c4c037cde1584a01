package repo

import (
	"fmt"

	"deposit_tracker/internal/domain"
	"deposit_tracker/internal/store"
)

// CustomerFields carries the mutable customer attributes supplied by a
// form or an imported spreadsheet row.
type CustomerFields struct {
	Name       string
	Phone      string
	Email      string
	LoanNumber string
	Address    string
}

// Customers is the customer repository. It also holds the deposit
// collection so Delete can enforce the referential check.
type Customers struct {
	col      *store.Collection[domain.Customer]
	deposits *store.Collection[domain.Deposit]
}

func NewCustomers(col *store.Collection[domain.Customer], deposits *store.Collection[domain.Deposit]) *Customers {
	return &Customers{col: col, deposits: deposits}
}

// Create validates and appends one customer, assigning the next free ID.
func (r *Customers) Create(fields CustomerFields) (domain.Customer, error) {
	if fields.Name == "" {
		return domain.Customer{}, fmt.Errorf("customer name is required: %w", domain.ErrValidation)
	}
	var created domain.Customer
	err := r.col.Update(func(customers []domain.Customer) ([]domain.Customer, error) {
		created = domain.Customer{
			ID:         store.NextID(customers),
			Name:       fields.Name,
			Phone:      fields.Phone,
			Email:      fields.Email,
			LoanNumber: fields.LoanNumber,
			Address:    fields.Address,
			CreatedAt:  now(),
		}
		return append(customers, created), nil
	})
	if err != nil {
		return domain.Customer{}, err
	}
	return created, nil
}

// CreateBatch appends customers with sequential IDs in one locked write.
// Used by spreadsheet import so a batch never interleaves with another
// writer. Returns the number of records appended.
func (r *Customers) CreateBatch(batch []CustomerFields) (int, error) {
	count := 0
	err := r.col.Update(func(customers []domain.Customer) ([]domain.Customer, error) {
		id := store.NextID(customers)
		ts := now()
		for _, fields := range batch {
			if fields.Name == "" {
				continue
			}
			customers = append(customers, domain.Customer{
				ID:         id,
				Name:       fields.Name,
				Phone:      fields.Phone,
				Email:      fields.Email,
				LoanNumber: fields.LoanNumber,
				Address:    fields.Address,
				CreatedAt:  ts,
			})
			id++
			count++
		}
		return customers, nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Update merges the supplied fields into an existing customer and stamps
// updated_at.
func (r *Customers) Update(id int, fields CustomerFields) (domain.Customer, error) {
	var updated domain.Customer
	err := r.col.Update(func(customers []domain.Customer) ([]domain.Customer, error) {
		for i := range customers {
			if customers[i].ID != id {
				continue
			}
			customers[i].Name = fields.Name
			customers[i].Phone = fields.Phone
			customers[i].Email = fields.Email
			customers[i].LoanNumber = fields.LoanNumber
			customers[i].Address = fields.Address
			customers[i].UpdatedAt = now()
			updated = customers[i]
			return customers, nil
		}
		return nil, fmt.Errorf("customer %d: %w", id, domain.ErrNotFound)
	})
	if err != nil {
		return domain.Customer{}, err
	}
	return updated, nil
}

// Delete removes a customer. It fails with ErrConflict while any deposit
// still references the customer, leaving the collection unchanged.
func (r *Customers) Delete(id int) error {
	return r.col.Update(func(customers []domain.Customer) ([]domain.Customer, error) {
		idx := -1
		for i := range customers {
			if customers[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("customer %d: %w", id, domain.ErrNotFound)
		}
		deposits, err := r.deposits.Load()
		if err != nil {
			return nil, err
		}
		for _, d := range deposits {
			if d.CustomerID == id {
				return nil, fmt.Errorf("customer %d has deposits: %w", id, domain.ErrConflict)
			}
		}
		return append(customers[:idx], customers[idx+1:]...), nil
	})
}

// List returns all customers in insertion order.
func (r *Customers) List() ([]domain.Customer, error) {
	return r.col.Load()
}

// Get returns one customer by ID.
func (r *Customers) Get(id int) (domain.Customer, error) {
	customers, err := r.col.Load()
	if err != nil {
		return domain.Customer{}, err
	}
	for _, c := range customers {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Customer{}, fmt.Errorf("customer %d: %w", id, domain.ErrNotFound)
}
