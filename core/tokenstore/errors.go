package tokenstore

import "errors"

var (
	// ErrNotFound is returned when no token has been persisted.
	ErrNotFound = errors.New("no persisted token")
	// ErrReadToken is returned when the credentials file exists but cannot be read or parsed.
	ErrReadToken = errors.New("failed to read persisted token")
	// ErrWriteToken is returned when the credentials file cannot be written.
	ErrWriteToken = errors.New("failed to write persisted token")
	// ErrEmptyToken is returned when saving an empty token value.
	ErrEmptyToken = errors.New("token value is empty")
)
