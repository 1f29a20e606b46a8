package store

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrMalformedSnapshot = errors.New("malformed snapshot")
	ErrUnknownBackend    = errors.New("unknown storage backend")
)
