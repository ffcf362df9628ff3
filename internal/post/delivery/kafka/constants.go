package kafka

// Kafka topics
const (
	// TopicPostsRaw carries collector batches of raw Graph API posts.
	TopicPostsRaw = "monitor.posts.raw"
)

// Consumer group IDs
const (
	ConsumerGroupPostIngestion = "monitor-post-ingestion"
)
