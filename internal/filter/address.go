package filter

import "taskdeck/internal/storage"

// Address is the visible serialized form of the current query, the
// client's stand-in for a browser address bar. The controller is the only
// writer; reading it back at mount is the only reverse flow.
type Address interface {
	// Query returns the current raw query string, "" if none.
	Query() string

	// SetQuery replaces the raw query string. An empty string clears it.
	SetQuery(raw string) error
}

// StoreAddress persists the query string in the key/value store so the
// next invocation mounts with the same filters, the way a reloaded page
// mounts from its URL.
type StoreAddress struct {
	store storage.Store
	key   string
}

// QueryKey is the fixed storage key for the persisted task query.
const QueryKey = "tasks-query"

// NewStoreAddress creates an Address backed by store under QueryKey.
func NewStoreAddress(store storage.Store) *StoreAddress {
	return &StoreAddress{store: store, key: QueryKey}
}

// Query implements Address.
func (a *StoreAddress) Query() string {
	raw, _ := a.store.Get(a.key)
	return raw
}

// SetQuery implements Address.
func (a *StoreAddress) SetQuery(raw string) error {
	if raw == "" {
		return a.store.Delete(a.key)
	}
	return a.store.Set(a.key, raw)
}

// MemAddress is an in-memory Address for tests.
type MemAddress struct {
	raw string
}

// Query implements Address.
func (a *MemAddress) Query() string { return a.raw }

// SetQuery implements Address.
func (a *MemAddress) SetQuery(raw string) error {
	a.raw = raw
	return nil
}
