// Package storage is a small string key/value store for session state, the
// desktop counterpart of a browser's local storage.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrClosed = errors.New("storage: store closed")

type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

type Kind string

const (
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
	KindMemory Kind = "memory"
)

const appDir = "voicejumper"

// Open opens a store of the given kind. An empty path selects the default
// location under the user config directory.
func Open(kind Kind, path string) (Store, error) {
	switch kind {
	case KindMemory:
		return NewMemory(), nil
	case KindFile, KindSQLite:
	default:
		return nil, fmt.Errorf("storage: unknown store kind %q", kind)
	}

	if path == "" {
		p, err := DefaultPath(kind)
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create dir: %w", err)
	}

	if kind == KindSQLite {
		return OpenSQLite(path)
	}
	return OpenFile(path)
}

func DefaultPath(kind Kind) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("storage: locate config dir: %w", err)
	}
	name := "storage.json"
	if kind == KindSQLite {
		name = "storage.db"
	}
	return filepath.Join(dir, appDir, name), nil
}
