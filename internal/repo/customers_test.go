package repo

import (
	"path/filepath"
	"testing"

	"deposit_tracker/internal/domain"
	"deposit_tracker/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestRepos(t *testing.T) (*Customers, *Deposits) {
	t.Helper()
	dir := t.TempDir()
	customerCol := store.NewCollection[domain.Customer](filepath.Join(dir, "customers.json"))
	depositCol := store.NewCollection[domain.Deposit](filepath.Join(dir, "deposits.json"))
	return NewCustomers(customerCol, depositCol), NewDeposits(depositCol, customerCol)
}

func TestCustomers_CreateAssignsSequentialIDs(t *testing.T) {
	customers, _ := newTestRepos(t)

	first, err := customers.Create(CustomerFields{Name: "Jane Doe", Phone: "555-1234"})
	require.NoError(t, err)
	require.Equal(t, 1, first.ID)
	require.Equal(t, "Jane Doe", first.Name)
	require.NotEmpty(t, first.CreatedAt)

	second, err := customers.Create(CustomerFields{Name: "John Roe"})
	require.NoError(t, err)
	require.Equal(t, 2, second.ID)
}

func TestCustomers_CreateIDIsMaxPlusOne(t *testing.T) {
	customers, _ := newTestRepos(t)

	first, err := customers.Create(CustomerFields{Name: "a"})
	require.NoError(t, err)
	_, err = customers.Create(CustomerFields{Name: "b"})
	require.NoError(t, err)
	require.NoError(t, customers.Delete(first.ID))

	third, err := customers.Create(CustomerFields{Name: "c"})
	require.NoError(t, err)
	require.Equal(t, 3, third.ID, "deleting a lower id must not reuse it")
}

func TestCustomers_CreateRequiresName(t *testing.T) {
	customers, _ := newTestRepos(t)

	_, err := customers.Create(CustomerFields{Phone: "555-1234"})
	require.ErrorIs(t, err, domain.ErrValidation)

	list, err := customers.List()
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestCustomers_UpdateMergesFields(t *testing.T) {
	customers, _ := newTestRepos(t)
	created, err := customers.Create(CustomerFields{Name: "Jane Doe"})
	require.NoError(t, err)

	updated, err := customers.Update(created.ID, CustomerFields{
		Name:       "Jane Doe",
		Phone:      "555-9999",
		LoanNumber: "L-7",
	})
	require.NoError(t, err)
	require.Equal(t, "555-9999", updated.Phone)
	require.Equal(t, "L-7", updated.LoanNumber)
	require.NotEmpty(t, updated.UpdatedAt)
}

func TestCustomers_UpdateMissingFails(t *testing.T) {
	customers, _ := newTestRepos(t)

	_, err := customers.Update(42, CustomerFields{Name: "x"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomers_DeleteRemovesExactlyOne(t *testing.T) {
	customers, _ := newTestRepos(t)
	a, err := customers.Create(CustomerFields{Name: "a"})
	require.NoError(t, err)
	_, err = customers.Create(CustomerFields{Name: "b"})
	require.NoError(t, err)

	require.NoError(t, customers.Delete(a.ID))

	list, err := customers.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "b", list[0].Name)
}

func TestCustomers_DeleteBlockedByDeposits(t *testing.T) {
	customers, deposits := newTestRepos(t)
	created, err := customers.Create(CustomerFields{Name: "Jane Doe"})
	require.NoError(t, err)
	_, err = deposits.Create(created.ID, decimal.NewFromInt(100), "2025-01-15", "")
	require.NoError(t, err)

	err = customers.Delete(created.ID)
	require.ErrorIs(t, err, domain.ErrConflict)

	list, err := customers.List()
	require.NoError(t, err)
	require.Len(t, list, 1, "collection must be unchanged")
}

func TestCustomers_DeleteMissingFails(t *testing.T) {
	customers, _ := newTestRepos(t)

	require.ErrorIs(t, customers.Delete(42), domain.ErrNotFound)
}

func TestCustomers_CreateBatchSkipsNameless(t *testing.T) {
	customers, _ := newTestRepos(t)
	_, err := customers.Create(CustomerFields{Name: "existing"})
	require.NoError(t, err)

	count, err := customers.CreateBatch([]CustomerFields{
		{Name: "Jane Doe", Phone: "555-1234"},
		{Phone: "no-name"},
		{Name: "John Roe"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, count)

	list, err := customers.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, 2, list[1].ID)
	require.Equal(t, "Jane Doe", list[1].Name)
	require.Equal(t, 3, list[2].ID, "skipped rows must not consume an id")
}
