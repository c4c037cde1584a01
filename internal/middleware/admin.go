package middleware

import (
	"net/http"

	"deposit_tracker/internal/repo"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AdminOnly re-reads the user's record on each request, so a deleted or
// demoted user loses admin access immediately rather than at next login.
func AdminOnly(users *repo.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, exists := CurrentUser(c)
		if !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		user, err := users.Get(current.ID)
		if err != nil || user.Role != "admin" {
			sess := sessions.Default(c)
			sess.AddFlash("Admin access required", "error")
			_ = sess.Save()
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
