package consumer

import (
	"monitor-srv/internal/post"
	kafkaDelivery "monitor-srv/internal/post/delivery/kafka"
)

// toIngestInput maps Kafka message DTO to usecase input (delivery → usecase boundary).
func toIngestInput(m kafkaDelivery.PostBatchMessage) post.IngestInput {
	return post.IngestInput{
		SourceID:   m.SourceID,
		SourceName: m.SourceName,
		SourceType: m.SourceType,
		Posts:      m.Posts,
	}
}
