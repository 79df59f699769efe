package middleware

import (
	"math/rand"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"reservation-demo/config"
)

// Chaos short-circuits a configurable percentage of requests with a
// synthetic 500. The percentage is read from live configuration on every
// request. Requests under /config are exempt so the knob can always be
// turned back down.
func Chaos(cfg *config.Runtime) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/config") {
			c.Next()
			return
		}

		pct := cfg.ChaosPercent()
		if pct > 0 && rand.Intn(100) < pct {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"status":    "error",
				"message":   "Internal Server Error",
				"simulated": true,
			})
			return
		}

		c.Next()
	}
}
