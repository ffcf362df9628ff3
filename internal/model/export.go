package model

import (
	"encoding/json"
	"time"
)

// Export statuses.
const (
	ExportStatusProcessing = "PROCESSING"
	ExportStatusCompleted  = "COMPLETED"
	ExportStatusFailed     = "FAILED"
)

// Export is a generated HTML report export.
type Export struct {
	ID     string
	UserID string

	Title      string
	ParamsHash string
	Filters    json.RawMessage

	Status       string // PROCESSING | COMPLETED | FAILED
	ErrorMessage string

	ObjectName    string
	FileSizeBytes int64
	FileFormat    string

	TotalPostsAnalyzed int
	GenerationTimeMs   int64

	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
