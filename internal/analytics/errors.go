package analytics

import "errors"

var (
	// ErrInvalidDateRange indicates date_from is after date_to.
	ErrInvalidDateRange = errors.New("analytics: invalid date range")
	// ErrTooManySources indicates the source filter exceeds the allowed size.
	ErrTooManySources = errors.New("analytics: too many sources")
)
