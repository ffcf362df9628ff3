package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

// IRabbitMQ is a self-reconnecting RabbitMQ connection. Implementations
// are safe for concurrent use.
type IRabbitMQ interface {
	Close()
	IsReady() bool
	Channel() (IChannel, error)
}

// IChannel is a RabbitMQ channel on the default exchange, re-created
// transparently after a reconnect.
type IChannel interface {
	QueueDeclare(queue QueueArgs) (amqp.Queue, error)
	Publish(ctx context.Context, publish PublishArgs) error
	Consume(consume ConsumeArgs) (<-chan amqp.Delivery, error)
	Close() error
}

// NewRabbitMQ dials the broker and returns a reconnecting connection.
func NewRabbitMQ(url string, retryWithoutTimeout bool) (IRabbitMQ, error) {
	conn := &connectionImpl{
		url:                 url,
		retryWithoutTimeout: retryWithoutTimeout,
	}
	if err := conn.connect(); err != nil {
		return nil, err
	}
	return conn, nil
}
