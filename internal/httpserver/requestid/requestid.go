// Package requestid tags every request with an id for log correlation.
package requestid

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// Header carries the request id on both request and response.
	Header = "X-Request-ID"

	ctxKey = "request_id"
)

// Middleware reuses a caller-supplied X-Request-ID or assigns a fresh UUID,
// stores it in the Gin context, and echoes it on the response.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(Header))
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(ctxKey, id)
		c.Writer.Header().Set(Header, id)
		c.Next()
	}
}

// Get returns the request id from the Gin context, or "" outside the middleware.
func Get(c *gin.Context) string {
	v, _ := c.Get(ctxKey)
	s, _ := v.(string)
	return s
}
