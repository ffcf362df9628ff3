package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	exportHTTP "monitor-srv/internal/export/delivery/http"
	exportPostgre "monitor-srv/internal/export/repository/postgre"
	exportUsecase "monitor-srv/internal/export/usecase"
	"monitor-srv/internal/middleware"
)

func (srv *HTTPServer) setupExportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := exportPostgre.New(srv.postgresDB, srv.l)

	ch, err := srv.rabbitConn.Channel()
	if err != nil {
		return err
	}

	uc := exportUsecase.New(srv.l, repo, srv.postRepo, srv.minioClient, ch, exportUsecase.Config{
		ExportBucket: srv.config.MinIO.Bucket,
	})

	handler := exportHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Export domain registered")
	return nil
}
