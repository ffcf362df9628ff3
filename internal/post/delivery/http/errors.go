package http

import (
	"errors"

	"monitor-srv/internal/post"
	pkgErrors "monitor-srv/pkg/errors"
)

var (
	errEmptyBatch       = pkgErrors.NewHTTPError(400, "Batch is empty")
	errBatchTooLarge    = pkgErrors.NewHTTPError(400, "Batch exceeds maximum size")
	errSourceRequired   = pkgErrors.NewHTTPError(400, "Source ID is required")
	errInvalidDateRange = pkgErrors.NewHTTPError(400, "Invalid date range")
	errPostNotFound     = pkgErrors.NewHTTPError(404, "Post not found")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, post.ErrEmptyBatch):
		return errEmptyBatch
	case errors.Is(err, post.ErrBatchTooLarge):
		return errBatchTooLarge
	case errors.Is(err, post.ErrSourceRequired):
		return errSourceRequired
	case errors.Is(err, post.ErrInvalidDateRange):
		return errInvalidDateRange
	case errors.Is(err, post.ErrPostNotFound):
		return errPostNotFound
	default:
		panic(err)
	}
}
