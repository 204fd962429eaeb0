package repository

import "errors"

var (
	ErrNotFound    = errors.New("cached summary not found")
	ErrFailedToGet = errors.New("failed to get cached summary")
	ErrFailedToSet = errors.New("failed to cache summary")
)
