package consumer

import (
	"context"

	"monitor-srv/internal/export"
	"monitor-srv/pkg/rabbitmq"
)

// ConsumeExportJobs starts draining the export job queue.
func (c *Consumer) ConsumeExportJobs(ctx context.Context) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return err
	}
	c.ch = ch

	if _, err := ch.QueueDeclare(rabbitmq.QueueArgs{
		Name:    export.QueueExportJobs,
		Durable: true,
	}); err != nil {
		return err
	}

	deliveries, err := ch.Consume(rabbitmq.ConsumeArgs{
		Queue:    export.QueueExportJobs,
		Consumer: "monitor-export-worker",
	})
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-deliveries:
				if !ok {
					c.l.Warnf(ctx, "export.delivery.rabbitmq.consumer: delivery channel closed")
					return
				}
				c.handleExportJobMessage(msg)
			}
		}
	}()

	c.l.Infof(ctx, "Consuming %s", export.QueueExportJobs)

	return nil
}
