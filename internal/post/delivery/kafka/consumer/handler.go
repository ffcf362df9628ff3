package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type postsRawHandler struct {
	consumer *Consumer
}

func (h *postsRawHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *postsRawHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *postsRawHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handlePostsRawMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "post.delivery.kafka.consumer.ConsumePostsRaw: Failed to process post batch message: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
