package repositories

import "context"

// KVStore is the ledger store boundary: a synchronous, string-keyed store with
// last-write-wins semantics per key. It offers no partial-write primitive and
// no transactional isolation; every mutation replaces the whole value.
type KVStore interface {
	// Get returns the value for key. The boolean is false when the key has
	// never been written.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
