package cache

import "errors"

// Store persists derived values per (rule set, input string) pair.
// Implementations must be safe for concurrent use.
type Store interface {
	// Put stores the results for an input under a rule set name.
	// Overwrites any existing entry for (set, input).
	Put(set, input string, results []string) error

	// Get retrieves cached results.
	// Returns ErrNotFound if the entry doesn't exist.
	Get(set, input string) ([]string, error)

	// Delete removes a single entry.
	// Returns nil if the entry doesn't exist.
	Delete(set, input string) error

	// DeleteSet removes every entry of a rule set.
	// Returns nil if the set has no entries.
	DeleteSet(set string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for cache operations.
var (
	// ErrNotFound indicates a cache entry doesn't exist.
	ErrNotFound = errors.New("cache entry not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("cache store closed")
)
