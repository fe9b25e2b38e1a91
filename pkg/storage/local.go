package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

// BlobStore is the key -> bytes store uploaded files land in. Keys are flat
// filenames, never paths.
type BlobStore interface {
	Save(key string, r io.Reader) error
	Delete(key string) error
	Exists(key string) bool
}

type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if dir == "" {
		return nil, errors.New("upload directory not configured")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) path(key string) string {
	return filepath.Join(s.dir, filepath.Base(key))
}

func (s *LocalStore) Save(key string, r io.Reader) error {
	f, err := os.Create(s.path(key))
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, r)
	return err
}

func (s *LocalStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalStore) Exists(key string) bool {
	_, err := os.Stat(s.path(key))
	return err == nil
}
