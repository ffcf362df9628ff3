package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/internal/post/repository"
)

const postColumns = `id, message, created_time, author_id, author_name, full_picture,
		attachments, reactions, likes, shares, comments,
		source_id, source_name, source_type`

// UpsertPosts - Insert or refresh a batch of posts from the collector
func (r *implRepository) UpsertPosts(ctx context.Context, opt repository.UpsertPostsOptions) (int, error) {
	query := `
		INSERT INTO monitor.posts (id, message, created_time, author_id, author_name, full_picture,
			attachments, reactions, likes, shares, comments,
			source_id, source_name, source_type, ingested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE SET
			message = EXCLUDED.message,
			created_time = EXCLUDED.created_time,
			author_id = EXCLUDED.author_id,
			author_name = EXCLUDED.author_name,
			full_picture = EXCLUDED.full_picture,
			attachments = EXCLUDED.attachments,
			reactions = EXCLUDED.reactions,
			likes = EXCLUDED.likes,
			shares = EXCLUDED.shares,
			comments = EXCLUDED.comments,
			source_id = EXCLUDED.source_id,
			source_name = EXCLUDED.source_name,
			source_type = EXCLUDED.source_type,
			ingested_at = EXCLUDED.ingested_at
	`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("UpsertPosts begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("UpsertPosts prepare: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	upserted := 0
	for _, p := range opt.Posts {
		row, err := buildPostRow(p, opt)
		if err != nil {
			return upserted, fmt.Errorf("UpsertPosts build: %w", err)
		}
		if _, err := stmt.ExecContext(ctx,
			row.id, row.message, row.createdTime, row.authorID, row.authorName, row.fullPicture,
			row.attachments, row.reactions, row.likes, row.shares, row.comments,
			row.sourceID, row.sourceName, row.sourceType, now,
		); err != nil {
			return upserted, fmt.Errorf("UpsertPosts exec: %w", err)
		}
		upserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("UpsertPosts commit: %w", err)
	}

	return upserted, nil
}

// GetPostByID - Load one post
func (r *implRepository) GetPostByID(ctx context.Context, id string) (model.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM monitor.posts WHERE id = $1`, postColumns)

	p, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Post{}, repository.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("GetPostByID: %w", err)
	}

	return p, nil
}
