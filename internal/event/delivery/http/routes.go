package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the read API onto the router group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/events", h.List)
}
