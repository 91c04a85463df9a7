package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the customer and ticket endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	customers := rg.Group("/customers")
	{
		customers.GET("", h.List)
		customers.GET("/:id", h.Detail)
		customers.PATCH("/:id", h.Update)
		customers.GET("/:id/history", h.History)
	}
	rg.POST("/tickets", h.CreateTicket)
}
