// Package store persists small JSON documents under fixed keys.
//
// It is the terminal counterpart of a browser's localStorage: favorites and
// watch history are each one value. Two backends exist, a gache JSON file
// (default) and a SQLite table.
package store

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mydrama-tv/mydrama/constant"
	"github.com/mydrama-tv/mydrama/where"
)

// ErrUnknownBackend is returned by Open for an unsupported storage.backend.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is a key-value store of raw values.
type Store interface {
	// Load returns nil and no error when key has never been saved.
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Open opens the backend named by storage.backend in the config directory.
func Open(backend string) (Store, error) {
	switch backend {
	case constant.StorageFile, "":
		return NewFile(filepath.Join(where.Store(), "store.json")), nil
	case constant.StorageSQLite:
		return NewSQLite(where.Database())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
