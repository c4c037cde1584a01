package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys for the logged-in identity.
const (
	SessionUserID   = "user_id"
	SessionUsername = "username"
	SessionRole     = "role"
)

// contextUserKey is where the request-scoped identity lives on the gin
// context.
const contextUserKey = "currentUser"

// AuthUser is the request-scoped authentication context, built once at
// request entry and read by handlers instead of poking at the session.
type AuthUser struct {
	ID       int
	Username string
	Role     string
}

// SessionAuth requires an active session. Unauthenticated requests are
// redirected to the login page with a flash notice.
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		id, ok := sess.Get(SessionUserID).(int)
		if !ok {
			sess.AddFlash("Please log in to access this page", "error")
			_ = sess.Save()
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		username, _ := sess.Get(SessionUsername).(string)
		role, _ := sess.Get(SessionRole).(string)
		c.Set(contextUserKey, AuthUser{ID: id, Username: username, Role: role})
		c.Next()
	}
}

// CurrentUser returns the identity SessionAuth stored on the context.
func CurrentUser(c *gin.Context) (AuthUser, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return AuthUser{}, false
	}
	user, ok := value.(AuthUser)
	return user, ok
}
