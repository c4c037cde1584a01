// Package api holds the HTTP page and form handlers. Handlers are
// constructors closing over their repositories; every mutating route
// follows validate -> flash + redirect back on failure -> persist, flash
// success, redirect to the listing.
package api

import (
	"net/http"
	"strconv"

	"deposit_tracker/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// flash queues a one-shot notice under the given category ("error" or
// "success") for the next rendered page.
func flash(c *gin.Context, category, message string) {
	sess := sessions.Default(c)
	sess.AddFlash(message, category)
	_ = sess.Save()
}

// redirectWithFlash queues a notice and redirects in one step.
func redirectWithFlash(c *gin.Context, category, message, location string) {
	flash(c, category, message)
	c.Redirect(http.StatusFound, location)
}

// render executes a template with the consumed flashes and the current
// user merged into the page data.
func render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	sess := sessions.Default(c)
	data["Errors"] = flashStrings(sess.Flashes("error"))
	data["Successes"] = flashStrings(sess.Flashes("success"))
	_ = sess.Save() // consume the flashes
	if user, ok := middleware.CurrentUser(c); ok {
		data["CurrentUser"] = user
	}
	c.HTML(http.StatusOK, name, data)
}

func flashStrings(flashes []interface{}) []string {
	out := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// paramID parses the :id route parameter.
func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
