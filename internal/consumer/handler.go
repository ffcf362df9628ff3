package consumer

import (
	"context"
	"fmt"

	analyticsRedis "monitor-srv/internal/analytics/repository/redis"
	exportConsumer "monitor-srv/internal/export/delivery/rabbitmq/consumer"
	exportPostgre "monitor-srv/internal/export/repository/postgre"
	exportUsecase "monitor-srv/internal/export/usecase"
	postConsumer "monitor-srv/internal/post/delivery/kafka/consumer"
	postPostgre "monitor-srv/internal/post/repository/postgre"
	postUsecase "monitor-srv/internal/post/usecase"
)

// domainConsumers holds the running consumers for every domain
type domainConsumers struct {
	post   *postConsumer.Consumer
	export *exportConsumer.Consumer
}

// setupDomains initializes repositories, usecases and consumers for all domains
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	// Post ingestion (Kafka)
	postRepository := postPostgre.New(srv.postgresDB, srv.l)
	analyticsCache := analyticsRedis.New(srv.redisClient, srv.l)
	postUC := postUsecase.New(postRepository, analyticsCache, srv.l)

	postCons, err := postConsumer.New(postConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     postUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create post consumer: %w", err)
	}

	// Export worker (RabbitMQ)
	exportRepository := exportPostgre.New(srv.postgresDB, srv.l)

	ch, err := srv.rabbitConn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	exportUC := exportUsecase.New(
		srv.l,
		exportRepository,
		postRepository,
		srv.minioClient,
		ch,
		exportUsecase.Config{
			ExportBucket: srv.config.MinIO.Bucket,
		},
	)

	exportCons, err := exportConsumer.New(exportConsumer.Config{
		Logger:   srv.l,
		RabbitMQ: srv.rabbitConn,
		UseCase:  exportUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create export consumer: %w", err)
	}

	srv.l.Info(ctx, "All consumer domains initialized")

	return &domainConsumers{
		post:   postCons,
		export: exportCons,
	}, nil
}

// startConsumers starts all domain consumers
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.post.ConsumePostsRaw(ctx); err != nil {
		return fmt.Errorf("failed to start post ingestion consumer: %w", err)
	}
	srv.l.Info(ctx, "Post ingestion consumer started")

	if err := consumers.export.ConsumeExportJobs(ctx); err != nil {
		return fmt.Errorf("failed to start export job worker: %w", err)
	}
	srv.l.Info(ctx, "Export job worker started")

	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if err := consumers.post.Close(); err != nil {
		srv.l.Errorf(ctx, "Failed to close post ingestion consumer: %v", err)
	}

	if err := consumers.export.Close(); err != nil {
		srv.l.Errorf(ctx, "Failed to close export job worker: %v", err)
	}
}
