package consumer

import (
	"context"
	"database/sql"

	"monitor-srv/config"
	"monitor-srv/pkg/discord"
	"monitor-srv/pkg/log"
	"monitor-srv/pkg/minio"
	"monitor-srv/pkg/rabbitmq"
	"monitor-srv/pkg/redis"
)

// ConsumerServer orchestrates the Kafka ingestion consumer and the
// RabbitMQ export worker.
type ConsumerServer struct {
	// Core Configuration
	l           log.Logger
	config      *config.Config
	kafkaConfig config.KafkaConfig

	// Infrastructure clients
	redisClient redis.IRedis
	postgresDB  *sql.DB
	minioClient minio.MinIO
	rabbitConn  rabbitmq.IRabbitMQ

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger      log.Logger
	Config      *config.Config
	KafkaConfig config.KafkaConfig

	// Infrastructure clients
	RedisClient redis.IRedis
	PostgresDB  *sql.DB
	MinIOClient minio.MinIO
	RabbitMQ    rabbitmq.IRabbitMQ

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
