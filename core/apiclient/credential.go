package apiclient

import "sync"

// Credential holds the token attached to outbound requests. It replaces
// ambient global header state with a single injected holder: the session
// layer writes it, every service client sharing the instance reads it.
// Safe for concurrent use.
type Credential struct {
	mu    sync.RWMutex
	token string
}

// NewCredential creates an empty credential holder.
func NewCredential() *Credential {
	return &Credential{}
}

// Set replaces the current token.
func (c *Credential) Set(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Clear removes the current token. Subsequent requests go out unauthenticated.
func (c *Credential) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// Token returns the current token, or "" when unauthenticated.
func (c *Credential) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}
