package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"workspace-assistant/pkg/log"
)

// RequestID tags every request with an id, reusing the caller's X-Request-ID
// when present, and threads it into the request context for logging.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
