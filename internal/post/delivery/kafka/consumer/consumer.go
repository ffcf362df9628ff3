package consumer

import (
	"context"

	kafkaDelivery "monitor-srv/internal/post/delivery/kafka"
)

// ConsumePostsRaw starts consuming collector post batches
func (c *Consumer) ConsumePostsRaw(ctx context.Context) error {
	group, err := c.createConsumerGroup(kafkaDelivery.ConsumerGroupPostIngestion)
	if err != nil {
		return err
	}
	c.postsRawGroup = group

	handler := &postsRawHandler{
		consumer: c,
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{kafkaDelivery.TopicPostsRaw}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", kafkaDelivery.TopicPostsRaw)

	return nil
}
