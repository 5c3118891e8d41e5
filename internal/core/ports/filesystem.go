package ports

import "io/fs"

// FileSystem abstracts the filesystem primitives used by discovery and creation.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Stat returns file info for path, following symlinks.
	Stat(path string) (fs.FileInfo, error)
	// ReadDir lists the immediate entries of the directory at path.
	ReadDir(path string) ([]fs.DirEntry, error)
	// Mkdir creates a single directory. It fails if path already exists.
	Mkdir(path string, perm fs.FileMode) error
}
