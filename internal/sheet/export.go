package sheet

import (
	"fmt"
	"strings"
	"time"

	"deposit_tracker/internal/domain"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Sheet1"

// DepositReport renders the all-deposits workbook: one row per deposit in
// stored order, customer fields joined in (or the Unknown placeholder).
// The caller owns the returned file and must Close it.
func DepositReport(rows []domain.DepositWithCustomer) (*excelize.File, error) {
	f := excelize.NewFile()
	header := []interface{}{"Deposit ID", "Date", "Customer Name", "Customer Phone", "Loan Number", "Amount", "Notes"}
	if err := f.SetSheetRow(reportSheet, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		values := []interface{}{
			row.ID,
			row.Date,
			row.CustomerName,
			row.CustomerPhone,
			row.LoanNumber,
			row.Amount.InexactFloat64(),
			row.Notes,
		}
		if err := f.SetSheetRow(reportSheet, cellRef, &values); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// CustomerReport renders the single-customer workbook with the reduced
// column set {Date, Amount, Notes}.
func CustomerReport(deposits []domain.Deposit) (*excelize.File, error) {
	f := excelize.NewFile()
	header := []interface{}{"Date", "Amount", "Notes"}
	if err := f.SetSheetRow(reportSheet, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}
	for i, d := range deposits {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		values := []interface{}{d.Date, d.Amount.InexactFloat64(), d.Notes}
		if err := f.SetSheetRow(reportSheet, cellRef, &values); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// DepositReportFilename names the all-deposits download after the current
// date, e.g. deposit_report_20250115.xlsx.
func DepositReportFilename(t time.Time) string {
	return fmt.Sprintf("deposit_report_%s.xlsx", t.Format("20060102"))
}

// CustomerReportFilename derives the download name from the customer's
// name with spaces replaced by underscores.
func CustomerReportFilename(customerName string) string {
	return fmt.Sprintf("customer_%s_report.xlsx", strings.ReplaceAll(customerName, " ", "_"))
}
