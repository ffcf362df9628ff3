package source

import "errors"

var (
	// ErrNameRequired indicates the source name is missing.
	ErrNameRequired = errors.New("source: name is required")
	// ErrTokenRequired indicates the access token is missing.
	ErrTokenRequired = errors.New("source: access token is required")
	// ErrInvalidType indicates the type is neither page nor group.
	ErrInvalidType = errors.New("source: invalid type")
	// ErrSourceNotFound indicates the source does not exist.
	ErrSourceNotFound = errors.New("source: not found")
	// ErrPermissionDenied indicates the caller may not mutate sources.
	ErrPermissionDenied = errors.New("source: permission denied")
)
