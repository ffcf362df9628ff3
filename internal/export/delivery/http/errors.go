package http

import (
	"errors"

	"monitor-srv/internal/export"
	pkgErrors "monitor-srv/pkg/errors"
)

var (
	errWrongBody          = pkgErrors.NewHTTPError(400, "Wrong body")
	errInvalidDateRange   = pkgErrors.NewHTTPError(400, "Invalid date range")
	errExportNotFound     = pkgErrors.NewHTTPError(404, "Export not found")
	errExportNotCompleted = pkgErrors.NewHTTPError(409, "Export is not completed")
	errPermissionDenied   = pkgErrors.NewHTTPError(403, "Permission denied")
	errRequestFailed      = pkgErrors.NewHTTPError(500, "Failed to queue export")
	errDownloadURLFailed  = pkgErrors.NewHTTPError(500, "Failed to presign download URL")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, export.ErrInvalidDateRange):
		return errInvalidDateRange
	case errors.Is(err, export.ErrExportNotFound):
		return errExportNotFound
	case errors.Is(err, export.ErrExportNotCompleted):
		return errExportNotCompleted
	case errors.Is(err, export.ErrPermissionDenied):
		return errPermissionDenied
	case errors.Is(err, export.ErrRequestFailed):
		return errRequestFailed
	case errors.Is(err, export.ErrDownloadURLFailed):
		return errDownloadURLFailed
	default:
		panic(err)
	}
}
