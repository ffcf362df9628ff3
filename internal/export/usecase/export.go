package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"monitor-srv/internal/export"
	"monitor-srv/internal/export/repository"
	"monitor-srv/internal/model"
	"monitor-srv/pkg/minio"
	"monitor-srv/pkg/paginator"
	"monitor-srv/pkg/rabbitmq"
)

// Request queues a new export or returns an existing one when the same
// params are already processing or finished recently.
// Flow: validate, hash params, dedup, create record, publish job.
func (uc *implUseCase) Request(ctx context.Context, sc model.Scope, input export.RequestInput) (export.RequestOutput, error) {
	f := input.Filters
	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		return export.RequestOutput{}, export.ErrInvalidDateRange
	}

	paramsHash, err := generateParamsHash(input)
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Request: generateParamsHash failed: %v", err)
		return export.RequestOutput{}, export.ErrRequestFailed
	}

	existing, err := uc.repo.FindByParamsHash(ctx, repository.FindByParamsHashOptions{
		ParamsHash: paramsHash,
		Status:     model.ExportStatusProcessing,
	})
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Request: FindByParamsHash processing failed: %v", err)
		return export.RequestOutput{}, export.ErrRequestFailed
	}
	if existing != nil {
		return export.RequestOutput{
			ExportID: existing.ID,
			Status:   existing.Status,
			Message:  "Export is already being generated",
		}, nil
	}

	completed, err := uc.repo.FindByParamsHash(ctx, repository.FindByParamsHashOptions{
		ParamsHash: paramsHash,
		Status:     model.ExportStatusCompleted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Request: FindByParamsHash completed failed: %v", err)
		return export.RequestOutput{}, export.ErrRequestFailed
	}
	if completed != nil && time.Since(completed.CreatedAt) < time.Hour {
		return export.RequestOutput{
			ExportID: completed.ID,
			Status:   completed.Status,
			Message:  "Export already completed",
		}, nil
	}

	filterJSON, err := json.Marshal(input.Filters)
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Request: marshal filters failed: %v", err)
		return export.RequestOutput{}, export.ErrRequestFailed
	}

	exp, err := uc.repo.CreateExport(ctx, repository.CreateExportOptions{
		ID:         uuid.NewString(),
		UserID:     sc.UserID,
		Title:      input.Title,
		ParamsHash: paramsHash,
		Filters:    filterJSON,
	})
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Request: CreateExport failed: %v", err)
		return export.RequestOutput{}, export.ErrRequestFailed
	}

	if err := uc.publishJob(ctx, exp.ID); err != nil {
		uc.l.Errorf(ctx, "export.usecase.Request: publishJob failed: %v", err)
		_ = uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{
			ExportID:     exp.ID,
			ErrorMessage: fmt.Sprintf("queueing failed: %v", err),
		})
		return export.RequestOutput{}, export.ErrRequestFailed
	}

	return export.RequestOutput{
		ExportID: exp.ID,
		Status:   model.ExportStatusProcessing,
		Message:  "Export generation started",
	}, nil
}

// Get returns the current status and metadata of an export.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, exportID string) (model.Export, error) {
	exp, err := uc.getOwned(ctx, sc, exportID)
	if err != nil {
		return model.Export{}, err
	}
	return exp, nil
}

// List pages the caller's exports, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input export.ListInput) (export.ListOutput, error) {
	input.PagQuery.Adjust()

	opt := repository.ListExportsOptions{
		UserID: sc.UserID,
		Limit:  input.PagQuery.Limit,
		Offset: input.PagQuery.Offset(),
	}

	total, err := uc.repo.CountExports(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.List: CountExports failed: %v", err)
		return export.ListOutput{}, err
	}

	exports, err := uc.repo.ListExports(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.List: ListExports failed: %v", err)
		return export.ListOutput{}, err
	}

	return export.ListOutput{
		Exports: exports,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(exports)),
			PerPage:     input.PagQuery.Limit,
			CurrentPage: input.PagQuery.Page,
		},
	}, nil
}

// Download presigns a 30 minute URL for a completed export.
func (uc *implUseCase) Download(ctx context.Context, sc model.Scope, exportID string) (export.DownloadOutput, error) {
	exp, err := uc.getOwned(ctx, sc, exportID)
	if err != nil {
		return export.DownloadOutput{}, err
	}

	if exp.Status != model.ExportStatusCompleted {
		return export.DownloadOutput{}, export.ErrExportNotCompleted
	}

	presigned, err := uc.minio.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.config.ExportBucket,
		ObjectName: exp.ObjectName,
		Expiry:     30 * time.Minute,
	})
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Download: GetPresignedDownloadURL failed: %v", err)
		return export.DownloadOutput{}, export.ErrDownloadURLFailed
	}

	return export.DownloadOutput{
		DownloadURL: presigned.URL,
		ExpiresAt:   presigned.ExpiresAt.Format(time.RFC3339),
		FileName:    fmt.Sprintf("export_%s.%s", exp.ID, exp.FileFormat),
		FileSize:    exp.FileSizeBytes,
	}, nil
}

// getOwned fetches an export and enforces ownership. Admins can see
// every export.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, exportID string) (model.Export, error) {
	exp, err := uc.repo.GetExportByID(ctx, exportID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Export{}, export.ErrExportNotFound
		}
		uc.l.Errorf(ctx, "export.usecase.getOwned: GetExportByID failed: %v", err)
		return model.Export{}, err
	}

	if exp.UserID != sc.UserID && !sc.IsAdmin() && sc.Role != model.RoleSystem {
		return model.Export{}, export.ErrPermissionDenied
	}
	return exp, nil
}

func (uc *implUseCase) publishJob(ctx context.Context, exportID string) error {
	body, err := json.Marshal(export.JobMessage{ExportID: exportID})
	if err != nil {
		return err
	}

	return uc.amqp.Publish(ctx, rabbitmq.PublishArgs{
		RoutingKey: export.QueueExportJobs,
		Msg: rabbitmq.Publishing{
			ContentType:  rabbitmq.ContentTypeJSON,
			DeliveryMode: 2, // persistent
			Body:         body,
		},
	})
}

// generateParamsHash creates a SHA-256 hash for deduplication.
func generateParamsHash(input export.RequestInput) (string, error) {
	data := map[string]interface{}{
		"title":   input.Title,
		"filters": input.Filters,
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	hash := sha256.Sum256(b)
	return fmt.Sprintf("%x", hash), nil
}
