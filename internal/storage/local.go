package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore implements Store on the local filesystem. Each key maps to one
// file under the base path. Writes go through a temp file and rename so a
// crash mid-write never leaves a torn snapshot behind.
type LocalStore struct {
	basePath string
}

// NewLocalStore creates a filesystem-backed store rooted at basePath
// (created if it doesn't exist).
func NewLocalStore(basePath string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStore{basePath: basePath}, nil
}

// Put writes the value under the key.
func (s *LocalStore) Put(ctx context.Context, key string, value []byte) error {
	fullPath := filepath.Join(s.basePath, key+".json")

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp := fullPath + ".tmp"
	if err := os.WriteFile(tmp, value, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, fullPath); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}

// Get retrieves the value stored under the key.
func (s *LocalStore) Get(ctx context.Context, key string) ([]byte, error) {
	fullPath := filepath.Join(s.basePath, key+".json")

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound(key)
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	return data, nil
}

// Delete removes the key.
func (s *LocalStore) Delete(ctx context.Context, key string) error {
	fullPath := filepath.Join(s.basePath, key+".json")

	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return nil
}

// Exists checks whether the key holds a value.
func (s *LocalStore) Exists(ctx context.Context, key string) (bool, error) {
	fullPath := filepath.Join(s.basePath, key+".json")

	_, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check snapshot existence: %w", err)
	}

	return true, nil
}
