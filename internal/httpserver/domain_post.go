package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	analyticsRedis "monitor-srv/internal/analytics/repository/redis"
	"monitor-srv/internal/middleware"
	postHTTP "monitor-srv/internal/post/delivery/http"
	postPostgre "monitor-srv/internal/post/repository/postgre"
	postUsecase "monitor-srv/internal/post/usecase"
)

func (srv *HTTPServer) setupPostDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	srv.postRepo = postPostgre.New(srv.postgresDB, srv.l)
	srv.analyticsCache = analyticsRedis.New(srv.redisClient, srv.l)

	uc := postUsecase.New(srv.postRepo, srv.analyticsCache, srv.l)

	handler := postHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Post domain registered")
	return nil
}
