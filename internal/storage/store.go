// Package storage persists small keyed blobs for the catalog. Every backend
// offers the same three operations; values are opaque bytes.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// Driver identifies a storage backend.
type Driver string

const (
	DriverFile   Driver = "file"   // one file per key (default)
	DriverBadger Driver = "badger" // badger key-value directory
	DriverSQLite Driver = "sqlite" // single sqlite database file
	DriverMemory Driver = "memory" // process memory (tests, --ephemeral)
)

// ErrNotExist is returned by Get when the key has never been written.
var ErrNotExist = errors.New("blob does not exist")

// Store is a keyed blob store. Set replaces any previous value atomically.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
	Close() error
	Driver() Driver
}

// Open returns the backend for driver rooted at path. For the file and
// badger drivers path is a directory; for sqlite it is a database file.
func Open(driver Driver, path string) (Store, error) {
	switch driver {
	case "", DriverFile:
		return NewFile(path)
	case DriverBadger:
		return OpenBadger(path)
	case DriverSQLite:
		return OpenSQLite(path)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

func notExist(key string) error {
	return fmt.Errorf("%s: %w", key, ErrNotExist)
}
