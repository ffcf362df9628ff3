package http

import (
	"monitor-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/analytics")
	api.Use(mw.Auth())
	{
		api.GET("/report", h.Report)
		api.GET("/overview", h.Overview)
		api.GET("/time-patterns", h.TimePatterns)
		api.GET("/content", h.Content)
		api.GET("/users", h.Users)
		api.GET("/engagement", h.Engagement)
		api.GET("/trends", h.Trends)
	}
}
