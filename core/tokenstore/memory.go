package tokenstore

import (
	"context"
	"sync"
)

// Memory is an in-process token store for tests and embedded use.
// The zero value is ready to use.
type Memory struct {
	mu    sync.Mutex
	token string
}

// NewMemory creates an in-memory token store, optionally pre-seeded with a
// token to simulate a previous login.
func NewMemory(token string) *Memory {
	return &Memory{token: token}
}

func (m *Memory) Load(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token == "" {
		return "", ErrNotFound
	}
	return m.token, nil
}

func (m *Memory) Save(_ context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
