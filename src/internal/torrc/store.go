package torrc

import (
	"errors"
	"io/fs"
	"os"
)

const filePermissions = 0644

// Store is the filesystem access the updater needs.
type Store interface {
	Exists(path string) (bool, error)
	Rename(oldpath, newpath string) error
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// FileStore implements Store on the OS filesystem.
type FileStore struct{}

// NewFileStore creates a store backed by the OS filesystem.
func NewFileStore() *FileStore {
	return &FileStore{}
}

func (s *FileStore) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Rename moves oldpath to newpath, replacing newpath if it exists.
func (s *FileStore) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (s *FileStore) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile creates or truncates path.
func (s *FileStore) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, filePermissions)
}
