// Package filesystem is the single entry point to disk access, backed by afero
// so tests can run against memory.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

func API() afero.Afero {
	return backend
}

func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs swaps in a volatile filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// IsMem reports whether the volatile filesystem is active. Backends that
// need a real file, like SQLite, check it.
func IsMem() bool {
	_, ok := backend.Fs.(*afero.MemMapFs)
	return ok
}
