package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"monitor-srv/internal/middleware"
	sourceHTTP "monitor-srv/internal/source/delivery/http"
	sourcePostgre "monitor-srv/internal/source/repository/postgre"
	sourceUsecase "monitor-srv/internal/source/usecase"
)

func (srv *HTTPServer) setupSourceDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := sourcePostgre.New(srv.postgresDB, srv.l)

	uc := sourceUsecase.New(srv.l, repo, srv.encrypter)

	handler := sourceHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Source domain registered")
	return nil
}
