// Package store defines the key-value persistence contract the wallet core
// depends on. On device this maps to the platform secure/key-value storage;
// here a file-backed implementation provides the same contract.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is the read/write contract for persisted records. Writes replace the
// value wholesale. Implementations need not be safe for concurrent writers;
// callers serialize writes (single-process, single-user assumption).
type Store interface {
	// Get returns the value and true, or nil and false if the key is absent.
	Get(key string) ([]byte, bool, error)

	// Set stores the value under key, replacing any previous value atomically.
	Set(key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}

// FileStore persists each key as one file under a directory, mode 0600.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	// Keys like "wallet.mnemonic.enc" are already safe file names; guard
	// against separators anyway.
	return filepath.Join(s.dir, strings.ReplaceAll(key, string(os.PathSeparator), "_"))
}

// Get reads the value for key.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return data, true, nil
}

// Set writes the value via a temp file and rename so a crash mid-write never
// leaves a partially written record.
func (s *FileStore) Set(key string, value []byte) error {
	target := s.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, value, 0600); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

// Delete removes the value for key.
func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
