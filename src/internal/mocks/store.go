package mocks

import (
	"fmt"
	"io/fs"
)

// MockStore is an in-memory implementation of torrc.Store.
type MockStore struct {
	Files map[string][]byte

	// Errors returned by the corresponding operations if not nil
	RenameErr error
	ReadErr   error
	WriteErr  error

	// Ops holds every operation performed, in order
	Ops []string
}

// NewMockStore creates a store pre-populated with files.
func NewMockStore(files map[string]string) *MockStore {
	m := &MockStore{Files: make(map[string][]byte)}
	for path, content := range files {
		m.Files[path] = []byte(content)
	}
	return m
}

func (m *MockStore) Exists(path string) (bool, error) {
	m.Ops = append(m.Ops, "exists "+path)
	_, ok := m.Files[path]
	return ok, nil
}

func (m *MockStore) Rename(oldpath, newpath string) error {
	m.Ops = append(m.Ops, fmt.Sprintf("rename %s %s", oldpath, newpath))
	if m.RenameErr != nil {
		return m.RenameErr
	}
	content, ok := m.Files[oldpath]
	if !ok {
		return fs.ErrNotExist
	}
	m.Files[newpath] = content
	delete(m.Files, oldpath)
	return nil
}

func (m *MockStore) ReadFile(path string) ([]byte, error) {
	m.Ops = append(m.Ops, "read "+path)
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	content, ok := m.Files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return append([]byte(nil), content...), nil
}

func (m *MockStore) WriteFile(path string, data []byte) error {
	m.Ops = append(m.Ops, "write "+path)
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Files[path] = append([]byte(nil), data...)
	return nil
}

// Content returns the content of path as a string, or "" if it does not exist.
func (m *MockStore) Content(path string) string {
	return string(m.Files[path])
}
