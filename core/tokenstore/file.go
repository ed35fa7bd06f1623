package tokenstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// credentials is the on-disk layout of the credentials file.
// A single entry mirrors the single localStorage-style slot the session
// lifecycle requires.
type credentials struct {
	Token string `yaml:"token"`
}

// File persists the token in a YAML file with owner-only permissions.
type File struct {
	mu   sync.Mutex
	path string
}

// DefaultPath returns the standard credentials file location under the
// user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Join(ErrReadToken, err)
	}
	return filepath.Join(dir, "buildcost", "credentials.yaml"), nil
}

// NewFile creates a file-backed token store at path. An empty path selects
// DefaultPath. The file itself is created lazily on first Save.
func NewFile(path string) (*File, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &File{path: path}, nil
}

// Path returns the credentials file location.
func (f *File) Path() string {
	return f.path
}

func (f *File) Load(_ context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", errors.Join(ErrReadToken, err)
	}

	var creds credentials
	if err := yaml.Unmarshal(raw, &creds); err != nil {
		return "", errors.Join(ErrReadToken, err)
	}
	if creds.Token == "" {
		return "", ErrNotFound
	}
	return creds.Token, nil
}

func (f *File) Save(_ context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return errors.Join(ErrWriteToken, err)
	}

	raw, err := yaml.Marshal(credentials{Token: token})
	if err != nil {
		return errors.Join(ErrWriteToken, err)
	}

	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return errors.Join(ErrWriteToken, err)
	}
	return nil
}

func (f *File) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return errors.Join(ErrWriteToken, err)
	}
	return nil
}
