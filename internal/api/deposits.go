package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"deposit_tracker/internal/domain"
	"deposit_tracker/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// DepositListHandler renders all deposits joined with customer names.
func DepositListHandler(deposits *repo.Deposits) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deposits.ListWithCustomers()
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to load deposits")
			list = nil
		}
		render(c, "deposits.html", gin.H{"Deposits": list})
	}
}

// AddDepositFormHandler shows the new-deposit form with the customer
// picker and today's date prefilled.
func AddDepositFormHandler(customers *repo.Customers) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := customers.List()
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to load customers")
			list = nil
		}
		render(c, "add_deposit.html", gin.H{
			"Customers": list,
			"Today":     time.Now().Format("2006-01-02"),
		})
	}
}

// AddDepositHandler creates a deposit from the posted form.
func AddDepositHandler(deposits *repo.Deposits) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, _ := strconv.Atoi(c.PostForm("customer_id"))
		date := strings.TrimSpace(c.PostForm("date"))
		notes := strings.TrimSpace(c.PostForm("notes"))

		amount, err := decimal.NewFromString(strings.TrimSpace(c.PostForm("amount")))
		if err != nil {
			redirectWithFlash(c, "error", "Customer, amount, and date are required", "/add_deposit")
			return
		}
		created, err := deposits.Create(customerID, amount, date, notes)
		if err != nil {
			if errors.Is(err, domain.ErrValidation) {
				redirectWithFlash(c, "error", "Customer, amount, and date are required", "/add_deposit")
				return
			}
			logrus.WithField("error", err.Error()).Error("Failed to create deposit")
			redirectWithFlash(c, "error", "Could not save the deposit", "/add_deposit")
			return
		}
		logrus.WithFields(logrus.Fields{
			"deposit_id":  created.ID,
			"customer_id": created.CustomerID,
			"amount":      created.Amount.String(),
			"date":        created.Date,
		}).Info("Deposit recorded")
		redirectWithFlash(c, "success", "Deposit added successfully", "/deposits")
	}
}
