package session

import "errors"

var (
	// ErrMissingAPI is returned when constructing a manager without an API collaborator.
	ErrMissingAPI = errors.New("session: api is required")
	// ErrMissingTokenStore is returned when constructing a manager without token storage.
	ErrMissingTokenStore = errors.New("session: token store is required")
	// ErrMissingCredential is returned when constructing a manager without a credential holder.
	ErrMissingCredential = errors.New("session: credential holder is required")
)
