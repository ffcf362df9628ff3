package postgre

import (
	"context"
	"fmt"

	"monitor-srv/internal/model"
	"monitor-srv/internal/post/repository"
)

// ListPosts - List posts matching the filter, oldest first
func (r *implRepository) ListPosts(ctx context.Context, opt repository.ListPostsOptions) ([]model.Post, error) {
	where, args := buildPostFilter(opt)

	query := fmt.Sprintf(`SELECT %s FROM monitor.posts%s ORDER BY created_time ASC NULLS LAST`, postColumns, where)
	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", opt.Limit, opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPosts: %w", err)
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("ListPosts scan: %w", err)
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

// CountPosts - Count posts matching the filter
func (r *implRepository) CountPosts(ctx context.Context, opt repository.ListPostsOptions) (int64, error) {
	where, args := buildPostFilter(opt)

	var count int64
	query := "SELECT COUNT(*) FROM monitor.posts" + where
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountPosts: %w", err)
	}

	return count, nil
}
