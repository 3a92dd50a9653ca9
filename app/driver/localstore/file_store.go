// Package localstore provides the persistent key-value fallback storage
// behind port.FallbackCache. The file store keeps the last resolved
// identity on disk; Noop stands in where durable storage is unavailable.
package localstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore is a file-backed fallback cache. Writes go through a
// temporary file and rename so a crash never leaves a half-written
// entry; a corrupt entry can still appear if the payload itself was
// bad, which the resolver handles by clearing it.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file store at the given path
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("fallback cache path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create fallback cache directory: %w", err)
	}

	return &FileStore{path: path}, nil
}

// Load returns the cached payload and whether an entry exists
func (s *FileStore) Load() ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read fallback cache: %w", err)
	}

	return payload, true, nil
}

// Store replaces the cached payload
func (s *FileStore) Store(payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("failed to write fallback cache: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace fallback cache: %w", err)
	}

	return nil
}

// Clear removes the entry. Clearing an absent entry is not an error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear fallback cache: %w", err)
	}

	return nil
}
