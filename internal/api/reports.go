package api

import (
	"errors"
	"fmt"
	"time"

	"deposit_tracker/internal/domain"
	"deposit_tracker/internal/repo"
	"deposit_tracker/internal/sheet"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportDepositsHandler streams the all-deposits workbook as a download
// named after the current date.
func ExportDepositsHandler(deposits *repo.Deposits) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := deposits.ListWithCustomers()
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to load deposits for export")
			redirectWithFlash(c, "error", "Could not build the deposit report", "/deposits")
			return
		}
		f, err := sheet.DepositReport(rows)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to build deposit report")
			redirectWithFlash(c, "error", "Could not build the deposit report", "/deposits")
			return
		}
		defer f.Close()
		sendWorkbook(c, f, sheet.DepositReportFilename(time.Now()))
	}
}

// CustomerReportHandler streams the single-customer workbook, named after
// the customer.
func CustomerReportHandler(customers *repo.Customers, deposits *repo.Deposits) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			redirectWithFlash(c, "error", "Customer not found", "/customers")
			return
		}
		customer, err := customers.Get(id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				redirectWithFlash(c, "error", "Customer not found", "/customers")
				return
			}
			logrus.WithField("error", err.Error()).Error("Failed to load customer for report")
			redirectWithFlash(c, "error", "Could not build the customer report", "/customers")
			return
		}
		list, err := deposits.ListByCustomer(id)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to load deposits for report")
			redirectWithFlash(c, "error", "Could not build the customer report", "/customers")
			return
		}
		f, err := sheet.CustomerReport(list)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to build customer report")
			redirectWithFlash(c, "error", "Could not build the customer report", "/customers")
			return
		}
		defer f.Close()
		sendWorkbook(c, f, sheet.CustomerReportFilename(customer.Name))
	}
}

// sendWorkbook writes an xlsx attachment to the response.
func sendWorkbook(c *gin.Context, f *excelize.File, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", xlsxContentType)
	if err := f.Write(c.Writer); err != nil {
		logrus.WithFields(logrus.Fields{
			"filename": filename,
			"error":    err.Error(),
		}).Error("Failed to stream workbook")
	}
}
