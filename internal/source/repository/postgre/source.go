package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"monitor-srv/internal/model"
	"monitor-srv/internal/source/repository"
)

const sourceColumns = `id, name, type, access_token, active, created_at, updated_at`

// CreateSource - Insert a new monitored source
func (r *implRepository) CreateSource(ctx context.Context, opt repository.CreateSourceOptions) (model.Source, error) {
	now := time.Now()
	src := model.Source{
		ID:          uuid.NewString(),
		Name:        opt.Name,
		Type:        opt.Type,
		AccessToken: opt.AccessToken,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	query := `
		INSERT INTO monitor.sources (id, name, type, access_token, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := r.db.ExecContext(ctx, query,
		src.ID, src.Name, src.Type, src.AccessToken, src.Active, src.CreatedAt, src.UpdatedAt,
	); err != nil {
		return model.Source{}, fmt.Errorf("CreateSource: %w", err)
	}

	return src, nil
}

// UpdateSource - Apply a partial update, bumping updated_at
func (r *implRepository) UpdateSource(ctx context.Context, opt repository.UpdateSourceOptions) (model.Source, error) {
	query := `
		UPDATE monitor.sources
		SET name = COALESCE(NULLIF($2, ''), name),
			access_token = COALESCE(NULLIF($3, ''), access_token),
			updated_at = $4
		WHERE id = $1
		RETURNING ` + sourceColumns

	row := r.db.QueryRowContext(ctx, query, opt.ID, opt.Name, opt.AccessToken, time.Now())

	src, err := scanSource(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Source{}, repository.ErrNotFound
		}
		return model.Source{}, fmt.Errorf("UpdateSource: %w", err)
	}
	return src, nil
}

// GetSourceByID - Fetch one source
func (r *implRepository) GetSourceByID(ctx context.Context, id string) (model.Source, error) {
	query := `SELECT ` + sourceColumns + ` FROM monitor.sources WHERE id = $1`

	src, err := scanSource(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Source{}, repository.ErrNotFound
		}
		return model.Source{}, fmt.Errorf("GetSourceByID: %w", err)
	}
	return src, nil
}

// ListSources - List sources, optionally only active ones
func (r *implRepository) ListSources(ctx context.Context, opt repository.ListSourcesOptions) ([]model.Source, error) {
	query := `SELECT ` + sourceColumns + ` FROM monitor.sources`
	if opt.ActiveOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListSources: %w", err)
	}
	defer rows.Close()

	sources := make([]model.Source, 0)
	for rows.Next() {
		src, err := scanSource(rows)
		if err != nil {
			return nil, fmt.Errorf("ListSources scan: %w", err)
		}
		sources = append(sources, src)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListSources rows: %w", err)
	}

	return sources, nil
}

// DeactivateSource - Soft delete: flip the active flag off
func (r *implRepository) DeactivateSource(ctx context.Context, id string) error {
	query := `UPDATE monitor.sources SET active = FALSE, updated_at = $2 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("DeactivateSource: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeactivateSource affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSource(row rowScanner) (model.Source, error) {
	var src model.Source
	err := row.Scan(
		&src.ID, &src.Name, &src.Type, &src.AccessToken,
		&src.Active, &src.CreatedAt, &src.UpdatedAt,
	)
	return src, err
}
