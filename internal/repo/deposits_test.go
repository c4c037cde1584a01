package repo

import (
	"testing"

	"deposit_tracker/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDeposits_CreateAndList(t *testing.T) {
	customers, deposits := newTestRepos(t)
	c, err := customers.Create(CustomerFields{Name: "Jane Doe"})
	require.NoError(t, err)

	created, err := deposits.Create(c.ID, decimal.RequireFromString("125.50"), "2025-02-01", "cash")
	require.NoError(t, err)
	require.Equal(t, 1, created.ID)
	require.NotEmpty(t, created.CreatedAt)

	list, err := deposits.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.True(t, list[0].Amount.Equal(decimal.RequireFromString("125.50")))
}

func TestDeposits_CreateValidation(t *testing.T) {
	_, deposits := newTestRepos(t)

	tests := []struct {
		name       string
		customerID int
		amount     decimal.Decimal
		date       string
	}{
		{"missing customer", 0, decimal.NewFromInt(10), "2025-01-01"},
		{"zero amount", 1, decimal.Zero, "2025-01-01"},
		{"negative amount", 1, decimal.NewFromInt(-5), "2025-01-01"},
		{"missing date", 1, decimal.NewFromInt(10), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := deposits.Create(tt.customerID, tt.amount, tt.date, "")
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	list, err := deposits.List()
	require.NoError(t, err)
	require.Empty(t, list, "failed creations must append nothing")
}

func TestDeposits_ListWithCustomersJoinsNames(t *testing.T) {
	customers, deposits := newTestRepos(t)
	c, err := customers.Create(CustomerFields{Name: "Jane Doe", Phone: "555-1234", LoanNumber: "L-99"})
	require.NoError(t, err)

	_, err = deposits.Create(c.ID, decimal.NewFromInt(100), "2025-01-01", "")
	require.NoError(t, err)
	_, err = deposits.Create(999, decimal.NewFromInt(50), "2025-01-02", "orphan")
	require.NoError(t, err)

	joined, err := deposits.ListWithCustomers()
	require.NoError(t, err)
	require.Len(t, joined, 2)

	require.Equal(t, "Jane Doe", joined[0].CustomerName)
	require.Equal(t, "555-1234", joined[0].CustomerPhone)
	require.Equal(t, "L-99", joined[0].LoanNumber)

	require.Equal(t, UnknownCustomer, joined[1].CustomerName)
	require.Empty(t, joined[1].CustomerPhone)
}

func TestDeposits_ListByCustomer(t *testing.T) {
	customers, deposits := newTestRepos(t)
	a, err := customers.Create(CustomerFields{Name: "a"})
	require.NoError(t, err)
	b, err := customers.Create(CustomerFields{Name: "b"})
	require.NoError(t, err)

	_, err = deposits.Create(a.ID, decimal.NewFromInt(1), "2025-01-01", "")
	require.NoError(t, err)
	_, err = deposits.Create(b.ID, decimal.NewFromInt(2), "2025-01-02", "")
	require.NoError(t, err)
	_, err = deposits.Create(a.ID, decimal.NewFromInt(3), "2025-01-03", "")
	require.NoError(t, err)

	mine, err := deposits.ListByCustomer(a.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.Equal(t, 1, mine[0].ID)
	require.Equal(t, 3, mine[1].ID)
}
