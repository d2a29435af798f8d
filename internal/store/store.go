package store

import (
	"context"
	"fmt"
)

// Store is the asynchronous string-keyed persistence abstraction consumed
// by the persist layer.
type Store interface {
	// Get returns the value stored under key. A missing key yields
	// ok == false with a nil error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Close releases any resources held by the store.
	Close() error
}

// Backend names accepted by Open and the settings file.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open constructs the store named by backend, rooted at dataDir.
func Open(backend, dataDir string) (Store, error) {
	switch backend {
	case BackendFile:
		return NewFile(dataDir)
	case BackendSQLite:
		return OpenSQLite(dataDir)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
