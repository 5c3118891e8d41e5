// Package store implements the persistent key-value store backing the project catalog.
package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"go.trai.ch/prj/internal/core/domain"
	"go.trai.ch/prj/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Store = (*Store)(nil)

var validKey = regexp.MustCompile(`^[a-zA-Z0-9_-][a-zA-Z0-9._-]*$`)

// Store implements ports.Store using one file per key inside a private directory.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at the default state directory.
func NewStore() (*Store, error) {
	return NewStoreWithPath(domain.DefaultStatePath())
}

// NewStoreWithPath creates a Store rooted at dir. The directory is created lazily on first write.
func NewStoreWithPath(dir string) (*Store, error) {
	if dir == "" {
		return nil, zerr.With(domain.ErrStoreCreateFailed, "dir", dir)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory holding the stored values.
func (s *Store) Dir() string {
	return s.dir
}

// Get returns the value stored under key, or nil, nil if it is absent.
func (s *Store) Get(key string) ([]byte, error) {
	filename, err := s.filename(key)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // Path is constructed from the state directory and a validated key
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "key", key)
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

// Set stores value under key. The write is atomic: readers see the old or the new value.
func (s *Store) Set(key string, value []byte) error {
	filename, err := s.filename(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.Write(value)
	closeErr := tmp.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}

	if err := os.Chmod(tmpName, domain.PrivateFilePerm); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}

	if err := os.Rename(tmpName, filename); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}

	return nil
}

// Clear removes key. Clearing an absent key is a no-op.
func (s *Store) Clear(key string) error {
	filename, err := s.filename(key)
	if err != nil {
		return err
	}

	if err := os.Remove(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreClearFailed.Error()), "key", key)
	}
	return nil
}

func (s *Store) filename(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", zerr.With(domain.ErrInvalidStoreKey, "key", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
