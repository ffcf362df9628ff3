package consumer

import (
	"errors"
)

var ErrInvalidConfig = errors.New("invalid consumer config")

// New - Factory function for the consumer server
func New(cfg Config) (*ConsumerServer, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &ConsumerServer{
		l:           cfg.Logger,
		config:      cfg.Config,
		kafkaConfig: cfg.KafkaConfig,
		redisClient: cfg.RedisClient,
		postgresDB:  cfg.PostgresDB,
		minioClient: cfg.MinIOClient,
		rabbitConn:  cfg.RabbitMQ,
		discord:     cfg.Discord,
	}, nil
}

func validate(cfg Config) error {
	if cfg.Logger == nil {
		return ErrInvalidConfig
	}
	if cfg.Config == nil {
		return ErrInvalidConfig
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return ErrInvalidConfig
	}
	if cfg.PostgresDB == nil {
		return ErrInvalidConfig
	}
	if cfg.RedisClient == nil {
		return ErrInvalidConfig
	}
	if cfg.MinIOClient == nil {
		return ErrInvalidConfig
	}
	if cfg.RabbitMQ == nil {
		return ErrInvalidConfig
	}

	return nil
}
