package http

import (
	"monitor-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/sources")
	api.Use(mw.Auth())
	{
		api.POST("", h.Create)
		api.GET("", h.List)
		api.GET("/:source_id", h.Detail)
		api.PATCH("/:source_id", h.Update)
		api.DELETE("/:source_id", h.Deactivate)
	}

	internal := r.Group("/internal/sources")
	internal.Use(mw.InternalAuth())
	{
		internal.GET("", h.ListActive)
	}
}
