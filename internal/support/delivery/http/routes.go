package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts direct support operations.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/support/upgrade", h.Upgrade)
}
