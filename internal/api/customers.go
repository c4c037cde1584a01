package api

import (
	"errors"
	"strings"

	"deposit_tracker/internal/domain"
	"deposit_tracker/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DashboardHandler renders the landing page with the customer list.
func DashboardHandler(customers *repo.Customers) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := customers.List()
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to load customers")
			list = nil
		}
		render(c, "index.html", gin.H{"Customers": list})
	}
}

// CustomerListHandler renders the customer listing page.
func CustomerListHandler(customers *repo.Customers) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := customers.List()
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to load customers")
			list = nil
		}
		render(c, "customers.html", gin.H{"Customers": list})
	}
}

// AddCustomerFormHandler shows the new-customer form.
func AddCustomerFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, "add_customer.html", nil)
	}
}

// customerFormFields reads the customer attributes shared by the add and
// edit forms.
func customerFormFields(c *gin.Context) repo.CustomerFields {
	return repo.CustomerFields{
		Name:       strings.TrimSpace(c.PostForm("name")),
		Phone:      strings.TrimSpace(c.PostForm("phone")),
		Email:      strings.TrimSpace(c.PostForm("email")),
		LoanNumber: strings.TrimSpace(c.PostForm("loan_number")),
		Address:    strings.TrimSpace(c.PostForm("address")),
	}
}

// AddCustomerHandler creates a customer from the posted form.
func AddCustomerHandler(customers *repo.Customers) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := customerFormFields(c)
		created, err := customers.Create(fields)
		if err != nil {
			if errors.Is(err, domain.ErrValidation) {
				redirectWithFlash(c, "error", "Customer name is required", "/add_customer")
				return
			}
			logrus.WithField("error", err.Error()).Error("Failed to create customer")
			redirectWithFlash(c, "error", "Could not save the customer", "/add_customer")
			return
		}
		logrus.WithFields(logrus.Fields{
			"customer_id": created.ID,
			"name":        created.Name,
		}).Info("Customer created")
		redirectWithFlash(c, "success", "Customer added successfully", "/customers")
	}
}

// EditCustomerFormHandler shows the edit form for one customer.
func EditCustomerFormHandler(customers *repo.Customers) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			redirectWithFlash(c, "error", "Customer not found", "/customers")
			return
		}
		customer, err := customers.Get(id)
		if err != nil {
			redirectWithFlash(c, "error", "Customer not found", "/customers")
			return
		}
		render(c, "edit_customer.html", gin.H{"Customer": customer})
	}
}

// EditCustomerHandler updates a customer from the posted form.
func EditCustomerHandler(customers *repo.Customers) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			redirectWithFlash(c, "error", "Customer not found", "/customers")
			return
		}
		fields := customerFormFields(c)
		if fields.Name == "" {
			redirectWithFlash(c, "error", "Customer name is required", "/edit_customer/"+c.Param("id"))
			return
		}
		if _, err := customers.Update(id, fields); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				redirectWithFlash(c, "error", "Customer not found", "/customers")
				return
			}
			logrus.WithFields(logrus.Fields{
				"customer_id": id,
				"error":       err.Error(),
			}).Error("Failed to update customer")
			redirectWithFlash(c, "error", "Could not save the customer", "/customers")
			return
		}
		logrus.WithField("customer_id", id).Info("Customer updated")
		redirectWithFlash(c, "success", "Customer updated successfully", "/customers")
	}
}

// DeleteCustomerHandler removes a customer unless deposits still
// reference it.
func DeleteCustomerHandler(customers *repo.Customers) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			redirectWithFlash(c, "error", "Customer not found", "/customers")
			return
		}
		if err := customers.Delete(id); err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				redirectWithFlash(c, "error", "Customer not found", "/customers")
			case errors.Is(err, domain.ErrConflict):
				redirectWithFlash(c, "error", "Cannot delete a customer with recorded deposits", "/customers")
			default:
				logrus.WithFields(logrus.Fields{
					"customer_id": id,
					"error":       err.Error(),
				}).Error("Failed to delete customer")
				redirectWithFlash(c, "error", "Could not delete the customer", "/customers")
			}
			return
		}
		logrus.WithField("customer_id", id).Info("Customer deleted")
		redirectWithFlash(c, "success", "Customer deleted successfully", "/customers")
	}
}
