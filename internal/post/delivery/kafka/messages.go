package kafka

import (
	"time"

	"monitor-srv/internal/model"
)

// PostBatchMessage - Kafka message cho monitor.posts.raw
type PostBatchMessage struct {
	SourceID    string       `json:"source_id"`
	SourceName  string       `json:"source_name"`
	SourceType  string       `json:"source_type"`
	Posts       []model.Post `json:"posts"`
	CollectedAt time.Time    `json:"collected_at"`
}
