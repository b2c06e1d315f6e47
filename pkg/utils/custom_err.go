package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrTripNotFound       = errors.New("trip not found")
	ErrDatabaseError      = errors.New("database error")
	ErrExtractionFailed   = errors.New("location extraction failed")
	ErrAssistantUnreached = errors.New("assistant service unavailable")
)
