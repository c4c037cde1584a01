package api

import (
	"errors"
	"net/http"
	"strings"

	"deposit_tracker/internal/domain"
	"deposit_tracker/internal/middleware"
	"deposit_tracker/internal/repo"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LoginFormHandler shows the login page, or skips it for an active session.
func LoginFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if _, ok := sess.Get(middleware.SessionUserID).(int); ok {
			c.Redirect(http.StatusFound, "/")
			return
		}
		render(c, "login.html", nil)
	}
}

// LoginHandler authenticates the posted credentials and stores the user's
// id, username and role in the session. Failures show a generic message
// without revealing which field was wrong.
func LoginHandler(users *repo.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := strings.TrimSpace(c.PostForm("username"))
		password := c.PostForm("password")
		if username == "" || password == "" {
			redirectWithFlash(c, "error", "Username and password are required", "/login")
			return
		}
		user, err := users.Authenticate(username, password)
		if err != nil {
			if !errors.Is(err, domain.ErrBadCredentials) {
				logrus.WithFields(logrus.Fields{
					"username": username,
					"error":    err.Error(),
				}).Error("Login failed")
			}
			redirectWithFlash(c, "error", "Invalid username or password", "/login")
			return
		}
		sess := sessions.Default(c)
		sess.Set(middleware.SessionUserID, user.ID)
		sess.Set(middleware.SessionUsername, user.Username)
		sess.Set(middleware.SessionRole, user.Role)
		if err := sess.Save(); err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to save session")
			redirectWithFlash(c, "error", "Login failed, please try again", "/login")
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,
			"username": user.Username,
		}).Info("User logged in")
		c.Redirect(http.StatusFound, "/")
	}
}

// LogoutHandler clears the session.
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		sess.Clear()
		sess.AddFlash("You have been logged out", "success")
		_ = sess.Save()
		c.Redirect(http.StatusFound, "/login")
	}
}
