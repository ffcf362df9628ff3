package export

import "errors"

var (
	// ErrInvalidDateRange indicates date_from is after date_to.
	ErrInvalidDateRange = errors.New("export: invalid date range")
	// ErrExportNotFound indicates the export record does not exist.
	ErrExportNotFound = errors.New("export: not found")
	// ErrExportNotCompleted indicates a download on a pending or failed export.
	ErrExportNotCompleted = errors.New("export: not completed")
	// ErrPermissionDenied indicates the caller does not own the export.
	ErrPermissionDenied = errors.New("export: permission denied")
	// ErrRequestFailed indicates the export could not be queued.
	ErrRequestFailed = errors.New("export: request failed")
	// ErrDownloadURLFailed indicates presigning the download URL failed.
	ErrDownloadURLFailed = errors.New("export: download url failed")
)
