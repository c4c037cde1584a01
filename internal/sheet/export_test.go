package sheet

import (
	"bytes"
	"testing"
	"time"

	"deposit_tracker/internal/domain"
	"deposit_tracker/internal/repo"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readBack(t *testing.T, f *excelize.File) [][]string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	reopened, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer reopened.Close()
	rows, err := reopened.GetRows(reopened.GetSheetName(0))
	require.NoError(t, err)
	return rows
}

func TestDepositReport_OneRowPerDepositInOrder(t *testing.T) {
	input := []domain.DepositWithCustomer{
		{
			Deposit: domain.Deposit{
				ID: 1, CustomerID: 7,
				Amount: decimal.RequireFromString("125.5"),
				Date:   "2025-01-15", Notes: "cash",
			},
			CustomerName: "Jane Doe", CustomerPhone: "555-1234", LoanNumber: "L-99",
		},
		{
			Deposit: domain.Deposit{
				ID: 2, CustomerID: 999,
				Amount: decimal.NewFromInt(50),
				Date:   "2025-01-16",
			},
			CustomerName: repo.UnknownCustomer,
		},
	}

	f, err := DepositReport(input)
	require.NoError(t, err)
	rows := readBack(t, f)

	require.Len(t, rows, 3)
	require.Equal(t, []string{"Deposit ID", "Date", "Customer Name", "Customer Phone", "Loan Number", "Amount", "Notes"}, rows[0])
	require.Equal(t, []string{"1", "2025-01-15", "Jane Doe", "555-1234", "L-99", "125.5", "cash"}, rows[1])
	require.Equal(t, "Unknown", rows[2][2])
}

func TestDepositReport_Empty(t *testing.T) {
	f, err := DepositReport(nil)
	require.NoError(t, err)
	rows := readBack(t, f)
	require.Len(t, rows, 1, "header only")
}

func TestCustomerReport_ReducedColumns(t *testing.T) {
	input := []domain.Deposit{
		{ID: 1, CustomerID: 7, Amount: decimal.NewFromInt(100), Date: "2025-01-15", Notes: "first"},
		{ID: 3, CustomerID: 7, Amount: decimal.NewFromInt(25), Date: "2025-02-01"},
	}

	f, err := CustomerReport(input)
	require.NoError(t, err)
	rows := readBack(t, f)

	require.Len(t, rows, 3)
	require.Equal(t, []string{"Date", "Amount", "Notes"}, rows[0])
	require.Equal(t, []string{"2025-01-15", "100", "first"}, rows[1])
}

func TestReportFilenames(t *testing.T) {
	ts := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	require.Equal(t, "deposit_report_20250115.xlsx", DepositReportFilename(ts))
	require.Equal(t, "customer_Jane_Doe_report.xlsx", CustomerReportFilename("Jane Doe"))
}
