package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reservation-demo/middleware"
)

const dateLayout = "2006-01-02"

// requireIdentity gates a protected route. Unauthenticated callers are
// redirected to the login page; absence of identity is never an error status.
func requireIdentity(c *gin.Context) (string, bool) {
	who := middleware.CallerIdentity(c)
	if who == "" {
		c.Redirect(http.StatusFound, "/")
		c.Abort()
		return "", false
	}
	return who, true
}
