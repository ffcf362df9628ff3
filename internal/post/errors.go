package post

import "errors"

// Domain errors
var (
	// ErrEmptyBatch - ingestion batch carries no posts
	ErrEmptyBatch = errors.New("post: empty batch")

	// ErrBatchTooLarge - ingestion batch exceeds MaxBatchSize
	ErrBatchTooLarge = errors.New("post: batch too large")

	// ErrSourceRequired - batch is missing its source id
	ErrSourceRequired = errors.New("post: source_id is required")

	// ErrInvalidDateRange - date_from is after date_to
	ErrInvalidDateRange = errors.New("post: invalid date range")

	// ErrPostNotFound - post does not exist
	ErrPostNotFound = errors.New("post: not found")
)
