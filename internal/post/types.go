package post

import (
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/pkg/paginator"
)

const (
	// MaxBatchSize bounds one ingestion batch.
	MaxBatchSize = 500
)

type IngestInput struct {
	SourceID   string
	SourceName string
	SourceType string
	Posts      []model.Post
}

type IngestOutput struct {
	Ingested int
}

type ListInput struct {
	SourceIDs []string
	DateFrom  *time.Time
	DateTo    *time.Time
	AuthorID  string
	PagQuery  paginator.PaginateQuery
}

type ListOutput struct {
	Posts     []model.Post
	Paginator paginator.Paginator
}
