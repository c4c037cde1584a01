// Package sheet reads customer spreadsheets and renders deposit reports.
// Workbooks go through excelize, comma-separated files through
// encoding/csv; both are reduced to a header row plus string rows before
// any mapping happens.
package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"deposit_tracker/internal/domain"
	"deposit_tracker/internal/repo"

	"github.com/xuri/excelize/v2"
)

// AllowedUpload reports whether the file extension is one the importer
// accepts. Other extensions are rejected before any bytes are read.
func AllowedUpload(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".xlsx", ".xls":
		return true
	}
	return false
}

// ReadTable reads the first sheet (or the whole CSV) into a header row and
// data rows. Unreadable input fails with domain.ErrBadFormat so the caller
// can surface it as a user-facing notice.
func ReadTable(r io.Reader, filename string) (headers []string, rows [][]string, err error) {
	var all [][]string
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		reader := csv.NewReader(r)
		reader.FieldsPerRecord = -1
		all, err = reader.ReadAll()
		if err != nil {
			return nil, nil, fmt.Errorf("read csv: %v: %w", err, domain.ErrBadFormat)
		}
	} else {
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("open workbook: %v: %w", err, domain.ErrBadFormat)
		}
		defer f.Close()
		all, err = f.GetRows(f.GetSheetName(0))
		if err != nil {
			return nil, nil, fmt.Errorf("read workbook: %v: %w", err, domain.ErrBadFormat)
		}
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[0], all[1:], nil
}

// columnMap holds the resolved column index per customer field, -1 when no
// column matched.
type columnMap struct {
	name       int
	phone      int
	email      int
	loanNumber int
	address    int
}

// fieldRules are the header predicates in priority order. Matching is a
// substring check against the lowercased header.
var fieldRules = []struct {
	field   string
	matches func(header string) bool
}{
	{"name", func(h string) bool { return strings.Contains(h, "name") }},
	{"phone", func(h string) bool { return strings.Contains(h, "phone") }},
	{"email", func(h string) bool { return strings.Contains(h, "email") }},
	{"loan_number", func(h string) bool { return strings.Contains(h, "loan") || strings.Contains(h, "number") }},
	{"address", func(h string) bool { return strings.Contains(h, "address") }},
}

// mapColumns resolves which column feeds which customer field. Columns are
// scanned left to right; each field takes the first column whose header
// matches its predicate, and each column is claimed by at most one field,
// the first in priority order (name, phone, email, loan_number, address)
// that matches it. A header like "Phone Number" therefore feeds phone,
// never loan_number.
func mapColumns(headers []string) columnMap {
	m := columnMap{name: -1, phone: -1, email: -1, loanNumber: -1, address: -1}
	taken := map[string]bool{}
	for i, header := range headers {
		h := strings.ToLower(header)
		for _, rule := range fieldRules {
			if taken[rule.field] || !rule.matches(h) {
				continue
			}
			taken[rule.field] = true
			switch rule.field {
			case "name":
				m.name = i
			case "phone":
				m.phone = i
			case "email":
				m.email = i
			case "loan_number":
				m.loanNumber = i
			case "address":
				m.address = i
			}
			break
		}
	}
	return m
}

// cell returns the row value at idx, or "" when the column did not match
// or the row is too short.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ParseCustomers maps tabular rows to customer fields. Rows without a name
// value are dropped so they never consume an ID.
func ParseCustomers(headers []string, rows [][]string) []repo.CustomerFields {
	m := mapColumns(headers)
	var parsed []repo.CustomerFields
	for _, row := range rows {
		name := cell(row, m.name)
		if name == "" {
			continue
		}
		parsed = append(parsed, repo.CustomerFields{
			Name:       name,
			Phone:      cell(row, m.phone),
			Email:      cell(row, m.email),
			LoanNumber: cell(row, m.loanNumber),
			Address:    cell(row, m.address),
		})
	}
	return parsed
}

// ImportCustomers reads an uploaded spreadsheet and appends the parsed
// customers in one batch. It returns the number of rows imported; rows
// without a name are skipped without aborting the batch.
func ImportCustomers(r io.Reader, filename string, customers *repo.Customers) (int, error) {
	if !AllowedUpload(filename) {
		return 0, fmt.Errorf("only CSV and Excel files are supported: %w", domain.ErrBadFormat)
	}
	headers, rows, err := ReadTable(r, filename)
	if err != nil {
		return 0, err
	}
	return customers.CreateBatch(ParseCustomers(headers, rows))
}

// ImportCustomersFromFile imports from a filesystem path. Used by the
// bulk-import command.
func ImportCustomersFromFile(path string, customers *repo.Customers) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ImportCustomers(f, filepath.Base(path), customers)
}
