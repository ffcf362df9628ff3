package http

import (
	"errors"

	"monitor-srv/internal/analytics"
	pkgErrors "monitor-srv/pkg/errors"
)

var (
	errInvalidDate      = pkgErrors.NewHTTPError(400, "Invalid date parameter")
	errInvalidDateRange = pkgErrors.NewHTTPError(400, "Invalid date range")
	errTooManySources   = pkgErrors.NewHTTPError(400, "Too many source IDs")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analytics.ErrInvalidDateRange):
		return errInvalidDateRange
	case errors.Is(err, analytics.ErrTooManySources):
		return errTooManySources
	default:
		panic(err)
	}
}
