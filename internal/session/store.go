package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store persists the single session key (the authenticated user id).
type Store interface {
	Read() (string, error)
	Write(value string) error
	Clear() error
}

// FileStore keeps the session key in a single file. An absent file
// means no session.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Read returns the persisted value, or "" when no session is stored.
func (s *FileStore) Read() (string, error) {
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read session file: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// Write persists the value, creating parent directories as needed.
func (s *FileStore) Write(value string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(value+"\n"), 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Clear removes the persisted value. A missing file is not an error.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session file: %w", err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
