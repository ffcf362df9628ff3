package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"monitor-srv/internal/analytics/engine"
	"monitor-srv/internal/export"
	"monitor-srv/internal/export/repository"
	"monitor-srv/internal/model"
	postRepo "monitor-srv/internal/post/repository"
	"monitor-srv/pkg/minio"
)

// Process runs one export job: load the record, resolve the corpus,
// analyze it, render HTML and upload the file.
// Failures land in the record so the requester can read them; a panic
// is converted to a FAILED status instead of killing the worker.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, exportID string) (err error) {
	startTime := time.Now()

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "export.usecase.Process: panic recovered: %v", r)
			_ = uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{
				ExportID:     exportID,
				ErrorMessage: fmt.Sprintf("internal panic: %v", r),
			})
			err = fmt.Errorf("export %s: panic: %v", exportID, r)
		}
	}()

	exp, err := uc.repo.GetExportByID(ctx, exportID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return export.ErrExportNotFound
		}
		uc.l.Errorf(ctx, "export.usecase.Process: GetExportByID failed: %v", err)
		return err
	}
	if exp.Status != model.ExportStatusProcessing {
		uc.l.Warnf(ctx, "export.usecase.Process: export %s already %s, skipping", exp.ID, exp.Status)
		return nil
	}

	var filters export.ReportFilters
	if len(exp.Filters) > 0 {
		if err := json.Unmarshal(exp.Filters, &filters); err != nil {
			return uc.fail(ctx, exp.ID, fmt.Sprintf("bad filters: %v", err))
		}
	}

	posts, err := uc.posts.ListPosts(ctx, postRepo.ListPostsOptions{
		SourceIDs: filters.SourceIDs,
		DateFrom:  filters.DateFrom,
		DateTo:    filters.DateTo,
		Limit:     uc.config.MaxPosts,
	})
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Process: ListPosts failed: %v", err)
		return uc.fail(ctx, exp.ID, fmt.Sprintf("corpus load failed: %v", err))
	}

	report := engine.Analyze(posts, time.Now())

	html, err := renderHTML(exp, report)
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Process: renderHTML failed: %v", err)
		return uc.fail(ctx, exp.ID, fmt.Sprintf("render failed: %v", err))
	}

	objectName := fmt.Sprintf("exports/%s.html", exp.ID)
	if _, err := uc.minio.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.config.ExportBucket,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(html),
		Size:        int64(len(html)),
		ContentType: "text/html; charset=utf-8",
		Metadata: map[string]string{
			"export_id": exp.ID,
			"user_id":   exp.UserID,
		},
	}); err != nil {
		uc.l.Errorf(ctx, "export.usecase.Process: UploadFile failed: %v", err)
		return uc.fail(ctx, exp.ID, fmt.Sprintf("upload failed: %v", err))
	}

	completedAt := time.Now()
	if err := uc.repo.UpdateCompleted(ctx, repository.UpdateCompletedOptions{
		ExportID:           exp.ID,
		ObjectName:         objectName,
		FileSizeBytes:      int64(len(html)),
		FileFormat:         "html",
		TotalPostsAnalyzed: report.Basic.TotalPosts,
		GenerationTimeMs:   completedAt.Sub(startTime).Milliseconds(),
		CompletedAt:        completedAt,
	}); err != nil {
		uc.l.Errorf(ctx, "export.usecase.Process: UpdateCompleted failed: %v", err)
		return err
	}

	uc.l.Infof(ctx, "export.usecase.Process: export %s completed in %dms", exp.ID, completedAt.Sub(startTime).Milliseconds())
	return nil
}

func (uc *implUseCase) fail(ctx context.Context, exportID, message string) error {
	if err := uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{
		ExportID:     exportID,
		ErrorMessage: message,
	}); err != nil {
		uc.l.Errorf(ctx, "export.usecase.fail: UpdateFailed failed: %v", err)
	}
	return fmt.Errorf("export %s: %s", exportID, message)
}
