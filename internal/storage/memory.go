package storage

import "sync"

// MemStore is an in-memory Store for tests and for running without a
// config directory.
type MemStore struct {
	mu      sync.RWMutex
	entries map[string]string

	// SetErr, when non-nil, is returned from every Set. Used to test the
	// silent-degradation paths.
	SetErr error
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[string]string)}
}

// Get implements Store.
func (s *MemStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

// Set implements Store.
func (s *MemStore) Set(key, value string) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

// Delete implements Store.
func (s *MemStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
