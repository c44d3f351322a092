package cache

import "sync"

// MemoryStore is an in-memory cache store for testing and single runs.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]map[string][]string // set -> input -> results
	closed bool
}

// NewMemoryStore creates a new in-memory cache store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]map[string][]string),
	}
}

// Put implements Store.
func (m *MemoryStore) Put(set, input string, results []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	if m.data[set] == nil {
		m.data[set] = make(map[string][]string)
	}

	// Copy to avoid retaining the caller's slice
	stored := make([]string, len(results))
	copy(stored, results)
	m.data[set][input] = stored

	return nil
}

// Get implements Store.
func (m *MemoryStore) Get(set, input string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	entries, ok := m.data[set]
	if !ok {
		return nil, ErrNotFound
	}
	results, ok := entries[input]
	if !ok {
		return nil, ErrNotFound
	}

	// Return a copy to prevent modification
	out := make([]string, len(results))
	copy(out, results)
	return out, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(set, input string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	if entries, ok := m.data[set]; ok {
		delete(entries, input)
	}
	return nil
}

// DeleteSet implements Store.
func (m *MemoryStore) DeleteSet(set string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.data, set)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.data = nil
	return nil
}

// Len returns the total number of entries across all sets.
// Useful for testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, entries := range m.data {
		count += len(entries)
	}
	return count
}
