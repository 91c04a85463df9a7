package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the query endpoint. Extra middleware, such as rate
// limiting, runs before the handler.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, mw...), h.Query)
	rg.POST("/router/query", handlers...)
}
