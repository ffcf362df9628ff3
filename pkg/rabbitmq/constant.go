package rabbitmq

import (
	"errors"
	"time"
)

const (
	RetryConnectionDelay   = 2 * time.Second
	RetryConnectionTimeout = 20 * time.Second
	ContentTypeJSON        = "application/json"
)

var (
	// ErrConnectionTimeout is returned when the initial connection does not complete in time.
	ErrConnectionTimeout = errors.New("rabbitmq: connection timeout")
)
