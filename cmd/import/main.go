package main

import (
	"os"
	"path/filepath"

	"deposit_tracker/internal/config"
	"deposit_tracker/internal/domain"
	"deposit_tracker/internal/repo"
	"deposit_tracker/internal/sheet"
	"deposit_tracker/internal/store"

	"github.com/sirupsen/logrus"
)

// Bulk-imports customers from a spreadsheet path into the same JSON
// collections the server uses. Usage: import <file.xlsx|file.csv>
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if len(os.Args) != 2 {
		logrus.Fatal("usage: import <file.xlsx|file.csv>")
	}
	path := os.Args[1]

	cfg := config.LoadConfig()
	customerCol := store.NewCollection[domain.Customer](filepath.Join(cfg.DataDir, "customers.json"))
	depositCol := store.NewCollection[domain.Deposit](filepath.Join(cfg.DataDir, "deposits.json"))
	customers := repo.NewCustomers(customerCol, depositCol)

	count, err := sheet.ImportCustomersFromFile(path, customers)
	if err != nil {
		logrus.Fatalf("import failed: %v", err)
	}
	logrus.WithFields(logrus.Fields{
		"file":     path,
		"imported": count,
	}).Info("Customers imported")
}
