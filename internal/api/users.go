package api

import (
	"errors"
	"strings"

	"deposit_tracker/internal/domain"
	"deposit_tracker/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UserListHandler renders the user administration page.
func UserListHandler(users *repo.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.List()
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to load users")
			list = nil
		}
		render(c, "users.html", gin.H{"Users": list})
	}
}

// AddUserFormHandler shows the new-user form.
func AddUserFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, "add_user.html", nil)
	}
}

// userFormFields reads the user attributes shared by the add and edit
// forms. The password stays plaintext here; the repository hashes it.
func userFormFields(c *gin.Context) repo.UserFields {
	return repo.UserFields{
		Username: strings.TrimSpace(c.PostForm("username")),
		Email:    strings.TrimSpace(c.PostForm("email")),
		Password: c.PostForm("password"),
		Role:     strings.TrimSpace(c.PostForm("role")),
	}
}

// AddUserHandler creates a user from the posted form.
func AddUserHandler(users *repo.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := userFormFields(c)
		created, err := users.Create(fields)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrValidation):
				redirectWithFlash(c, "error", "Username, email and password are required", "/add_user")
			case errors.Is(err, domain.ErrConflict):
				redirectWithFlash(c, "error", "Username already exists", "/add_user")
			default:
				logrus.WithField("error", err.Error()).Error("Failed to create user")
				redirectWithFlash(c, "error", "Could not save the user", "/add_user")
			}
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":  created.ID,
			"username": created.Username,
			"role":     created.Role,
		}).Info("User created")
		redirectWithFlash(c, "success", "User added successfully", "/users")
	}
}

// EditUserFormHandler shows the edit form for one user.
func EditUserFormHandler(users *repo.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			redirectWithFlash(c, "error", "User not found", "/users")
			return
		}
		user, err := users.Get(id)
		if err != nil {
			redirectWithFlash(c, "error", "User not found", "/users")
			return
		}
		render(c, "edit_user.html", gin.H{"User": user})
	}
}

// EditUserHandler updates a user from the posted form. Leaving the
// password blank keeps the current one.
func EditUserHandler(users *repo.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			redirectWithFlash(c, "error", "User not found", "/users")
			return
		}
		fields := userFormFields(c)
		if fields.Username == "" || fields.Email == "" {
			redirectWithFlash(c, "error", "Username and email are required", "/edit_user/"+c.Param("id"))
			return
		}
		if _, err := users.Update(id, fields); err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				redirectWithFlash(c, "error", "User not found", "/users")
			case errors.Is(err, domain.ErrConflict):
				redirectWithFlash(c, "error", "Username already exists", "/edit_user/"+c.Param("id"))
			default:
				logrus.WithFields(logrus.Fields{
					"user_id": id,
					"error":   err.Error(),
				}).Error("Failed to update user")
				redirectWithFlash(c, "error", "Could not save the user", "/users")
			}
			return
		}
		logrus.WithField("user_id", id).Info("User updated")
		redirectWithFlash(c, "success", "User updated successfully", "/users")
	}
}

// DeleteUserHandler removes a user.
func DeleteUserHandler(users *repo.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			redirectWithFlash(c, "error", "User not found", "/users")
			return
		}
		if err := users.Delete(id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				redirectWithFlash(c, "error", "User not found", "/users")
				return
			}
			logrus.WithFields(logrus.Fields{
				"user_id": id,
				"error":   err.Error(),
			}).Error("Failed to delete user")
			redirectWithFlash(c, "error", "Could not delete the user", "/users")
			return
		}
		logrus.WithField("user_id", id).Info("User deleted")
		redirectWithFlash(c, "success", "User deleted successfully", "/users")
	}
}
