package usecase

import (
	"context"

	"monitor-srv/internal/export"
	"monitor-srv/internal/export/repository"
	postRepo "monitor-srv/internal/post/repository"
	"monitor-srv/pkg/log"
	"monitor-srv/pkg/minio"
	"monitor-srv/pkg/rabbitmq"
)

const (
	defaultExportBucket = "monitor-exports"
	defaultMaxPosts     = 10000
)

// Config holds configuration for export generation.
type Config struct {
	ExportBucket string
	MaxPosts     int64
}

type implUseCase struct {
	repo   repository.PostgresRepository
	posts  postRepo.PostgresRepository
	minio  minio.MinIO
	amqp   rabbitmq.IChannel
	l      log.Logger
	config Config
}

// New creates a new export UseCase implementation and makes sure the
// job queue exists.
func New(
	l log.Logger,
	repo repository.PostgresRepository,
	posts postRepo.PostgresRepository,
	minioClient minio.MinIO,
	amqp rabbitmq.IChannel,
	cfg Config,
) export.UseCase {
	if cfg.ExportBucket == "" {
		cfg.ExportBucket = defaultExportBucket
	}
	if cfg.MaxPosts <= 0 {
		cfg.MaxPosts = defaultMaxPosts
	}

	if _, err := amqp.QueueDeclare(rabbitmq.QueueArgs{
		Name:    export.QueueExportJobs,
		Durable: true,
	}); err != nil {
		l.Errorf(context.Background(), "export.usecase.New: QueueDeclare failed: %v", err)
	}

	return &implUseCase{
		repo:   repo,
		posts:  posts,
		minio:  minioClient,
		amqp:   amqp,
		l:      l,
		config: cfg,
	}
}
