package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.GET("/card/:visits", h.cardPNG)
	r.GET("/card", h.cardLegacy)

	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/qr", h.qr)
	}
}
