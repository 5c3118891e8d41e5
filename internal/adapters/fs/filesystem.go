// Package fs implements filesystem access and project location resolution.
package fs

import (
	"io/fs"
	"os"

	"go.trai.ch/prj/internal/core/ports"
)

var _ ports.FileSystem = (*OSFS)(nil)

// OSFS implements ports.FileSystem using the standard library.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat returns file info for the given path, following symlinks.
func (o *OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadDir lists the immediate entries of the directory at path.
func (o *OSFS) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// Mkdir creates a single directory.
func (o *OSFS) Mkdir(path string, perm fs.FileMode) error {
	return os.Mkdir(path, perm)
}
