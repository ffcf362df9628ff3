package http

import (
	"monitor-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/exports")
	api.Use(mw.Auth())
	{
		api.POST("", h.Request)
		api.GET("", h.List)
		api.GET("/:export_id", h.Get)
		api.GET("/:export_id/download", h.Download)
	}
}
