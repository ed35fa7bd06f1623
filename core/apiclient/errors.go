package apiclient

import "errors"

var (
	// ErrMissingBaseURL is returned when constructing a client without an API base URL.
	ErrMissingBaseURL = errors.New("api base URL is required")
	// ErrInvalidBaseURL is returned when the configured base URL cannot be parsed.
	ErrInvalidBaseURL = errors.New("invalid api base URL")
	// ErrRequestFailed is returned for transport-level failures (timeout, unreachable host).
	ErrRequestFailed = errors.New("api request failed")
	// ErrUnauthorized is returned when the server rejects the current credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDecodeResponse is returned when a success response body cannot be decoded.
	ErrDecodeResponse = errors.New("failed to decode api response")
)
