package middleware

import (
	"github.com/gin-gonic/gin"

	"support-router/pkg/response"
)

// Recovery turns handler panics into the standard 500 envelope.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if p := recover(); p != nil {
				m.l.Errorf(c.Request.Context(), "middleware.Recovery: %s %s: %v", c.Request.Method, c.Request.URL.Path, p)
				response.InternalError(c, nil)
				c.Abort()
			}
		}()
		c.Next()
	}
}
