package repository

import (
	"context"

	"monitor-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	UpsertPosts(ctx context.Context, opt UpsertPostsOptions) (int, error)
	ListPosts(ctx context.Context, opt ListPostsOptions) ([]model.Post, error)
	CountPosts(ctx context.Context, opt ListPostsOptions) (int64, error)
	GetPostByID(ctx context.Context, id string) (model.Post, error)
}
