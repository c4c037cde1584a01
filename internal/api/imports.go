package api

import (
	"errors"
	"fmt"

	"deposit_tracker/internal/domain"
	"deposit_tracker/internal/repo"
	"deposit_tracker/internal/sheet"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ImportCustomersFormHandler shows the spreadsheet upload form.
func ImportCustomersFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, "import_customers.html", nil)
	}
}

// ImportCustomersHandler reads the uploaded spreadsheet and appends the
// parsed customers. Rows without a name are skipped; an unreadable file
// commits nothing.
func ImportCustomersHandler(customers *repo.Customers) gin.HandlerFunc {
	return func(c *gin.Context) {
		header, err := c.FormFile("file")
		if err != nil || header.Filename == "" {
			redirectWithFlash(c, "error", "No file selected", "/import_customers")
			return
		}
		if !sheet.AllowedUpload(header.Filename) {
			redirectWithFlash(c, "error", "Only CSV and Excel files are supported", "/import_customers")
			return
		}
		file, err := header.Open()
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to open upload")
			redirectWithFlash(c, "error", "Could not read the uploaded file", "/import_customers")
			return
		}
		defer file.Close()

		count, err := sheet.ImportCustomers(file, header.Filename, customers)
		if err != nil {
			if errors.Is(err, domain.ErrBadFormat) {
				redirectWithFlash(c, "error", "Could not read the uploaded file", "/import_customers")
				return
			}
			logrus.WithFields(logrus.Fields{
				"filename": header.Filename,
				"error":    err.Error(),
			}).Error("Import failed")
			redirectWithFlash(c, "error", "Error importing customers", "/import_customers")
			return
		}
		logrus.WithFields(logrus.Fields{
			"filename": header.Filename,
			"imported": count,
		}).Info("Customers imported")
		redirectWithFlash(c, "success", fmt.Sprintf("Successfully imported %d customers", count), "/customers")
	}
}
