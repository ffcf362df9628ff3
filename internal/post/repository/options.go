package repository

import (
	"time"

	"monitor-srv/internal/model"
)

type UpsertPostsOptions struct {
	SourceID   string
	SourceName string
	SourceType string
	Posts      []model.Post
}

type ListPostsOptions struct {
	SourceIDs []string
	DateFrom  *time.Time
	DateTo    *time.Time
	AuthorID  string
	Limit     int64
	Offset    int64
}
