package http

import (
	"errors"

	"monitor-srv/internal/source"
	pkgErrors "monitor-srv/pkg/errors"
)

var (
	errWrongBody        = pkgErrors.NewHTTPError(400, "Wrong body")
	errNameRequired     = pkgErrors.NewHTTPError(400, "Name is required")
	errTokenRequired    = pkgErrors.NewHTTPError(400, "Access token is required")
	errInvalidType      = pkgErrors.NewHTTPError(400, "Type must be page or group")
	errSourceNotFound   = pkgErrors.NewHTTPError(404, "Source not found")
	errPermissionDenied = pkgErrors.NewHTTPError(403, "Permission denied")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, source.ErrNameRequired):
		return errNameRequired
	case errors.Is(err, source.ErrTokenRequired):
		return errTokenRequired
	case errors.Is(err, source.ErrInvalidType):
		return errInvalidType
	case errors.Is(err, source.ErrSourceNotFound):
		return errSourceNotFound
	case errors.Is(err, source.ErrPermissionDenied):
		return errPermissionDenied
	default:
		panic(err)
	}
}
