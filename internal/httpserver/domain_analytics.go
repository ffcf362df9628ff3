package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	analyticsHTTP "monitor-srv/internal/analytics/delivery/http"
	analyticsUsecase "monitor-srv/internal/analytics/usecase"
	"monitor-srv/internal/middleware"
)

func (srv *HTTPServer) setupAnalyticsDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := analyticsUsecase.New(srv.l, srv.postRepo, srv.analyticsCache)

	handler := analyticsHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Analytics domain registered")
	return nil
}
