// Package storage provides the persistent key/value store used by the
// client-side stores (theme, session, saved filter query).
package storage

// Store is a synchronous string key/value facility. Implementations must
// treat each key as an independent entry; callers own disjoint key
// namespaces and never read each other's entries.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)

	// Set writes the value for key, creating or overwriting it.
	Set(key, value string) error

	// Delete removes the entry for key. Deleting a missing key is not an
	// error.
	Delete(key string) error
}
