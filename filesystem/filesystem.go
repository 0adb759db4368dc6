// Package filesystem provides a swappable abstraction for every filesystem operation the application performs.
//
// Production code runs on the OS filesystem; tests switch to an in-memory backend.
package filesystem

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance.
func API() afero.Afero {
	return backend
}

// Use replaces the backend with fs.
func Use(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetOsFs restores the native operating system backend.
func SetOsFs() {
	Use(afero.NewOsFs())
}

// SetMemMapFs switches to a volatile in-memory backend.
func SetMemMapFs() {
	Use(afero.NewMemMapFs())
}

// GacheFs exposes the active backend through the gache.FileSystem interface.
type GacheFs struct{}

// OpenFile opens a file using the current backend.
func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

// MkdirAll creates a directory tree using the current backend.
func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
