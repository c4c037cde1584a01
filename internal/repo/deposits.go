package repo

import (
	"fmt"

	"deposit_tracker/internal/domain"
	"deposit_tracker/internal/store"

	"github.com/shopspring/decimal"
)

// UnknownCustomer is the display label used when a deposit's customer id
// does not resolve.
const UnknownCustomer = "Unknown"

// Deposits is the deposit repository. Deposits are created and listed,
// never edited or deleted.
type Deposits struct {
	col       *store.Collection[domain.Deposit]
	customers *store.Collection[domain.Customer]
}

func NewDeposits(col *store.Collection[domain.Deposit], customers *store.Collection[domain.Customer]) *Deposits {
	return &Deposits{col: col, customers: customers}
}

// Create validates and appends one deposit. The customer reference is not
// checked for existence; an orphaned id degrades to the Unknown label at
// read time.
func (r *Deposits) Create(customerID int, amount decimal.Decimal, date, notes string) (domain.Deposit, error) {
	if customerID <= 0 {
		return domain.Deposit{}, fmt.Errorf("customer is required: %w", domain.ErrValidation)
	}
	if !amount.IsPositive() {
		return domain.Deposit{}, fmt.Errorf("amount must be positive: %w", domain.ErrValidation)
	}
	if date == "" {
		return domain.Deposit{}, fmt.Errorf("date is required: %w", domain.ErrValidation)
	}
	var created domain.Deposit
	err := r.col.Update(func(deposits []domain.Deposit) ([]domain.Deposit, error) {
		created = domain.Deposit{
			ID:         store.NextID(deposits),
			CustomerID: customerID,
			Amount:     amount,
			Date:       date,
			Notes:      notes,
			CreatedAt:  now(),
		}
		return append(deposits, created), nil
	})
	if err != nil {
		return domain.Deposit{}, err
	}
	return created, nil
}

// List returns all deposits in insertion order.
func (r *Deposits) List() ([]domain.Deposit, error) {
	return r.col.Load()
}

// ListWithCustomers returns all deposits joined in-memory with the owning
// customer's display fields, in insertion order.
func (r *Deposits) ListWithCustomers() ([]domain.DepositWithCustomer, error) {
	deposits, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	customers, err := r.customers.Load()
	if err != nil {
		return nil, err
	}
	byID := make(map[int]domain.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}
	joined := make([]domain.DepositWithCustomer, 0, len(deposits))
	for _, d := range deposits {
		row := domain.DepositWithCustomer{Deposit: d, CustomerName: UnknownCustomer}
		if c, ok := byID[d.CustomerID]; ok {
			row.CustomerName = c.Name
			row.CustomerPhone = c.Phone
			row.LoanNumber = c.LoanNumber
		}
		joined = append(joined, row)
	}
	return joined, nil
}

// ListByCustomer returns the deposits referencing one customer, in
// insertion order.
func (r *Deposits) ListByCustomer(customerID int) ([]domain.Deposit, error) {
	deposits, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	var matched []domain.Deposit
	for _, d := range deposits {
		if d.CustomerID == customerID {
			matched = append(matched, d)
		}
	}
	return matched, nil
}
