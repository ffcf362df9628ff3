package repository

import "errors"

var (
	ErrFailedToGetCache  = errors.New("failed to get cache")
	ErrFailedToSaveCache = errors.New("failed to save cache")
)
