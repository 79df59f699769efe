package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ContextRequestID = "request_id"

// RequestLogger tags each request with an id and logs method, path, status
// and handling time once the request is done. Side-effect only; never
// short-circuits.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := uuid.NewString()
		c.Set(ContextRequestID, reqID)

		c.Next()

		log.Printf("[%s] %s %s %s -> %d (%s)",
			reqID[:8],
			c.ClientIP(),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
