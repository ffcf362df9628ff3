package usecase

import (
	"context"
	"errors"

	"monitor-srv/internal/model"
	"monitor-srv/internal/post"
	"monitor-srv/internal/post/repository"
	"monitor-srv/pkg/paginator"
)

// Ingest validates a collector batch, upserts it and drops any cached
// analytics snapshots touching the source.
func (uc *implUseCase) Ingest(ctx context.Context, sc model.Scope, input post.IngestInput) (post.IngestOutput, error) {
	if len(input.Posts) == 0 {
		return post.IngestOutput{}, post.ErrEmptyBatch
	}
	if len(input.Posts) > post.MaxBatchSize {
		return post.IngestOutput{}, post.ErrBatchTooLarge
	}
	if input.SourceID == "" {
		return post.IngestOutput{}, post.ErrSourceRequired
	}

	ingested, err := uc.repo.UpsertPosts(ctx, repository.UpsertPostsOptions{
		SourceID:   input.SourceID,
		SourceName: input.SourceName,
		SourceType: input.SourceType,
		Posts:      input.Posts,
	})
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.Ingest: UpsertPosts failed: %v", err)
		return post.IngestOutput{}, err
	}

	// snapshots are best-effort; a stale cache expires on its own TTL
	if err := uc.cache.InvalidateReports(ctx, input.SourceID); err != nil {
		uc.l.Warnf(ctx, "post.usecase.Ingest: InvalidateReports failed: %v", err)
	}

	return post.IngestOutput{Ingested: ingested}, nil
}

// List returns a paginated page of posts matching the filter.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input post.ListInput) (post.ListOutput, error) {
	if input.DateFrom != nil && input.DateTo != nil && input.DateFrom.After(*input.DateTo) {
		return post.ListOutput{}, post.ErrInvalidDateRange
	}

	input.PagQuery.Adjust()

	opt := repository.ListPostsOptions{
		SourceIDs: input.SourceIDs,
		DateFrom:  input.DateFrom,
		DateTo:    input.DateTo,
		AuthorID:  input.AuthorID,
		Limit:     input.PagQuery.Limit,
		Offset:    input.PagQuery.Offset(),
	}

	total, err := uc.repo.CountPosts(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.List: CountPosts failed: %v", err)
		return post.ListOutput{}, err
	}

	posts, err := uc.repo.ListPosts(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.List: ListPosts failed: %v", err)
		return post.ListOutput{}, err
	}

	return post.ListOutput{
		Posts: posts,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(posts)),
			PerPage:     input.PagQuery.Limit,
			CurrentPage: input.PagQuery.Page,
		},
	}, nil
}

// Detail returns one post by ID.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Post, error) {
	p, err := uc.repo.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Post{}, post.ErrPostNotFound
		}
		uc.l.Errorf(ctx, "post.usecase.Detail: GetPostByID failed: %v", err)
		return model.Post{}, err
	}
	return p, nil
}
