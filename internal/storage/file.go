package storage

import (
	"os"
	"path/filepath"
)

// FileStore persists each key as a file under a single directory, the same
// way the config dir holds one file per credential. Keys are fixed,
// filename-safe names owned by their respective stores.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir. The directory is created
// lazily on the first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Get implements Store. A missing or unreadable file reports absent.
func (s *FileStore) Get(key string) (string, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set implements Store. Files are written with mode 0600; the directory is
// created with mode 0700 if needed.
func (s *FileStore) Set(key, value string) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), []byte(value), 0600)
}

// Delete implements Store.
func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
