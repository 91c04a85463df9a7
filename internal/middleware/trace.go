package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"support-router/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// Trace puts a request id into the request context, reusing the caller's
// X-Request-ID when present, and echoes it back.
func (m Middleware) Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		ctx := log.WithTraceID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
