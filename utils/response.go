package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "error", "message": message})
}

// HTMLPage writes a minimal self-contained page. Rendering is deliberately
// plain; the interesting behavior is in the status codes and the state
// changes, not the markup.
func HTMLPage(c *gin.Context, code int, title, body string) {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>%s</title></head>
<body>
<h1>%s</h1>
%s
</body>
</html>`, title, title, body)
	c.Data(code, "text/html; charset=utf-8", []byte(page))
}

// ErrorPage renders an error as HTML with the given status, keeping the
// status code visible to scripted clients.
func ErrorPage(c *gin.Context, code int, message string) {
	HTMLPage(c, code, http.StatusText(code), "<p>"+message+"</p>")
}
