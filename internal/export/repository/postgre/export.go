package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"monitor-srv/internal/export/repository"
	"monitor-srv/internal/model"
)

const exportColumns = `id, user_id, title, params_hash, filters, status, error_message,
		object_name, file_size_bytes, file_format, total_posts_analyzed, generation_time_ms,
		completed_at, created_at, updated_at`

// CreateExport - Insert a new export record in PROCESSING state
func (r *implRepository) CreateExport(ctx context.Context, opt repository.CreateExportOptions) (model.Export, error) {
	now := time.Now()
	exp := model.Export{
		ID:         opt.ID,
		UserID:     opt.UserID,
		Title:      opt.Title,
		ParamsHash: opt.ParamsHash,
		Filters:    opt.Filters,
		Status:     model.ExportStatusProcessing,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	query := `
		INSERT INTO monitor.exports (id, user_id, title, params_hash, filters, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := r.db.ExecContext(ctx, query,
		exp.ID, exp.UserID, exp.Title, exp.ParamsHash, exp.Filters, exp.Status, exp.CreatedAt, exp.UpdatedAt,
	); err != nil {
		return model.Export{}, fmt.Errorf("CreateExport: %w", err)
	}

	return exp, nil
}

// GetExportByID - Fetch one export
func (r *implRepository) GetExportByID(ctx context.Context, id string) (model.Export, error) {
	query := `SELECT ` + exportColumns + ` FROM monitor.exports WHERE id = $1`

	exp, err := scanExport(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Export{}, repository.ErrNotFound
		}
		return model.Export{}, fmt.Errorf("GetExportByID: %w", err)
	}
	return exp, nil
}

// FindByParamsHash - Find the latest export with a given hash and status.
// A miss returns (nil, nil).
func (r *implRepository) FindByParamsHash(ctx context.Context, opt repository.FindByParamsHashOptions) (*model.Export, error) {
	query := `
		SELECT ` + exportColumns + `
		FROM monitor.exports
		WHERE params_hash = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	exp, err := scanExport(r.db.QueryRowContext(ctx, query, opt.ParamsHash, opt.Status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("FindByParamsHash: %w", err)
	}
	return &exp, nil
}

// UpdateCompleted - Mark an export COMPLETED with its output metadata
func (r *implRepository) UpdateCompleted(ctx context.Context, opt repository.UpdateCompletedOptions) error {
	query := `
		UPDATE monitor.exports
		SET status = $2, object_name = $3, file_size_bytes = $4, file_format = $5,
			total_posts_analyzed = $6, generation_time_ms = $7, completed_at = $8, updated_at = $9
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		opt.ExportID, model.ExportStatusCompleted, opt.ObjectName, opt.FileSizeBytes, opt.FileFormat,
		opt.TotalPostsAnalyzed, opt.GenerationTimeMs, opt.CompletedAt, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("UpdateCompleted: %w", err)
	}
	return checkAffected(res)
}

// UpdateFailed - Mark an export FAILED with its error message
func (r *implRepository) UpdateFailed(ctx context.Context, opt repository.UpdateFailedOptions) error {
	query := `
		UPDATE monitor.exports
		SET status = $2, error_message = $3, updated_at = $4
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		opt.ExportID, model.ExportStatusFailed, opt.ErrorMessage, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("UpdateFailed: %w", err)
	}
	return checkAffected(res)
}

// ListExports - Page one user's exports, newest first
func (r *implRepository) ListExports(ctx context.Context, opt repository.ListExportsOptions) ([]model.Export, error) {
	query := `
		SELECT ` + exportColumns + `
		FROM monitor.exports
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, opt.Limit, opt.Offset)
	if err != nil {
		return nil, fmt.Errorf("ListExports: %w", err)
	}
	defer rows.Close()

	exports := make([]model.Export, 0)
	for rows.Next() {
		exp, err := scanExport(rows)
		if err != nil {
			return nil, fmt.Errorf("ListExports scan: %w", err)
		}
		exports = append(exports, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListExports rows: %w", err)
	}

	return exports, nil
}

// CountExports - Count one user's exports
func (r *implRepository) CountExports(ctx context.Context, opt repository.ListExportsOptions) (int64, error) {
	query := `SELECT COUNT(*) FROM monitor.exports WHERE user_id = $1`

	var total int64
	if err := r.db.QueryRowContext(ctx, query, opt.UserID).Scan(&total); err != nil {
		return 0, fmt.Errorf("CountExports: %w", err)
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExport(row rowScanner) (model.Export, error) {
	var (
		exp          model.Export
		errorMessage sql.NullString
		objectName   sql.NullString
		fileSize     sql.NullInt64
		fileFormat   sql.NullString
		totalPosts   sql.NullInt32
		genTime      sql.NullInt64
		completedAt  sql.NullTime
	)

	err := row.Scan(
		&exp.ID, &exp.UserID, &exp.Title, &exp.ParamsHash, &exp.Filters,
		&exp.Status, &errorMessage,
		&objectName, &fileSize, &fileFormat, &totalPosts, &genTime,
		&completedAt, &exp.CreatedAt, &exp.UpdatedAt,
	)
	if err != nil {
		return model.Export{}, err
	}

	exp.ErrorMessage = errorMessage.String
	exp.ObjectName = objectName.String
	exp.FileSizeBytes = fileSize.Int64
	exp.FileFormat = fileFormat.String
	exp.TotalPostsAnalyzed = int(totalPosts.Int32)
	exp.GenerationTimeMs = genTime.Int64
	if completedAt.Valid {
		t := completedAt.Time
		exp.CompletedAt = &t
	}

	return exp, nil
}

func checkAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
