package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"reservation-demo/config"
)

// Latency suspends the handling goroutine for the delay currently configured
// for the route's category, then proceeds. Only this request waits; other
// in-flight requests are unaffected.
func Latency(cfg *config.Runtime, category string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d := cfg.LatencyFor(category); d > 0 {
			time.Sleep(d)
		}
		c.Next()
	}
}
