package middleware

import (
	"github.com/gin-gonic/gin"

	"reservation-demo/config"
	"reservation-demo/services"
)

const (
	// SessionCookie carries the username verbatim in cookie mode.
	SessionCookie = "reservation_user"

	ContextIdentity = "identity"
	ContextToken    = "token"
)

// Identity resolves the caller's identity under the current auth mode and
// attaches it to the request context. Never short-circuits: no identity is a
// valid resolved state, the route's own gate decides what to do with it.
func Identity(ids *services.IdentityService, cfg *config.Runtime) gin.HandlerFunc {
	return func(c *gin.Context) {
		var who, token string

		switch cfg.AuthMode() {
		case config.AuthModeToken:
			token = c.Query("token")
			if token == "" {
				token = c.PostForm("token")
			}
			who = ids.ResolveToken(token)
		default:
			if v, err := c.Cookie(SessionCookie); err == nil {
				who = ids.ResolveCookie(v)
			}
		}

		c.Set(ContextIdentity, who)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// CallerIdentity returns the identity resolved for this request, or "" if
// the caller is unauthenticated.
func CallerIdentity(c *gin.Context) string {
	return c.GetString(ContextIdentity)
}

// CallerToken returns the token this request presented, valid or not.
func CallerToken(c *gin.Context) string {
	return c.GetString(ContextToken)
}
