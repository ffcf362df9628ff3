package consumer

import (
	"fmt"

	"monitor-srv/internal/export"
	"monitor-srv/pkg/log"
	"monitor-srv/pkg/rabbitmq"
)

// Config holds the configuration for the export job worker
type Config struct {
	Logger   log.Logger
	RabbitMQ rabbitmq.IRabbitMQ
	UseCase  export.UseCase
}

// Consumer drains the export job queue and runs each job to completion
type Consumer struct {
	l    log.Logger
	conn rabbitmq.IRabbitMQ
	uc   export.UseCase

	ch rabbitmq.IChannel
}

// New creates a new export job worker
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if cfg.RabbitMQ == nil {
		return nil, fmt.Errorf("rabbitmq connection is required")
	}

	return &Consumer{
		l:    cfg.Logger,
		conn: cfg.RabbitMQ,
		uc:   cfg.UseCase,
	}, nil
}

// Close closes the consuming channel
func (c *Consumer) Close() error {
	if c.ch != nil {
		if err := c.ch.Close(); err != nil {
			return fmt.Errorf("failed to close export jobs channel: %w", err)
		}
	}
	return nil
}
