// Package localstore persists the session token to a file, standing in
// for browser local storage: one string under one fixed location,
// surviving reloads. Nothing else is persisted anywhere client-side.
package localstore

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// FileStore reads and writes the token file.
type FileStore struct {
	path string
}

// New creates a FileStore at path. The file is created lazily on the
// first Save.
func New(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the persisted token, or "" when none has been saved.
func (s *FileStore) Load() (string, error) {
	buf, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("load token: %w", err)
	}
	return strings.TrimSpace(string(buf)), nil
}

// Save overwrites the persisted token.
func (s *FileStore) Save(token string) error {
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// Clear removes the persisted token. Clearing an absent token is not an
// error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
