package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"monitor-srv/internal/model"
	kafkaDelivery "monitor-srv/internal/post/delivery/kafka"
	"monitor-srv/pkg/scope"
)

// handlePostsRawMessage receives message, normalizes scope + input, delegates to usecase (no business logic here).
func (c *Consumer) handlePostsRawMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	c.l.Infof(ctx, "post.delivery.kafka.consumer.handlePostsRawMessage: Processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	var message kafkaDelivery.PostBatchMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "post.delivery.kafka.consumer.handlePostsRawMessage: Invalid message format (skipping): %v", err)
		return nil // Skip invalid messages
	}

	if message.SourceID == "" || len(message.Posts) == 0 {
		c.l.Warnf(ctx, "post.delivery.kafka.consumer.handlePostsRawMessage: Invalid message: missing required fields (skipping)")
		return nil
	}

	input := toIngestInput(message)

	sc := model.SystemScope
	ctx = scope.SetScopeToContext(ctx, sc)

	output, err := c.uc.Ingest(ctx, sc, input)
	if err != nil {
		c.l.Errorf(ctx, "post.delivery.kafka.consumer.handlePostsRawMessage: usecase Ingest failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "post.delivery.kafka.consumer.handlePostsRawMessage: Successfully ingested batch from source %s: %d posts",
		message.SourceID, output.Ingested)
	return nil
}
