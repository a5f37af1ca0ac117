package capstore

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory capture store for testing and
// single-process pipelines. Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	sets   map[string]storedSet
	closed bool
}

// storedSet holds bindings with metadata for List().
type storedSet struct {
	bindings  Bindings
	timestamp time.Time
}

// NewMemoryStore creates a new in-memory capture store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sets: make(map[string]storedSet),
	}
}

// Save implements Store.
func (m *MemoryStore) Save(setID string, b Bindings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	// Copy so later mutation of the caller's maps doesn't leak in.
	m.sets[setID] = storedSet{
		bindings:  b.clone(),
		timestamp: time.Now().UTC(),
	}
	return nil
}

// Load implements Store.
func (m *MemoryStore) Load(setID string) (Bindings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return Bindings{}, ErrStoreClosed
	}

	set, ok := m.sets[setID]
	if !ok {
		return Bindings{}, ErrNotFound
	}
	return set.bindings.clone(), nil
}

// List implements Store.
func (m *MemoryStore) List() ([]Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	infos := make([]Info, 0, len(m.sets))
	for setID, set := range m.sets {
		infos = append(infos, Info{
			SetID:     setID,
			Groups:    len(set.bindings.Named) + len(set.bindings.Indexed),
			Timestamp: set.timestamp,
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Timestamp.Equal(infos[j].Timestamp) {
			return infos[i].SetID < infos[j].SetID
		}
		return infos[i].Timestamp.Before(infos[j].Timestamp)
	})
	return infos, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(setID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.sets, setID)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.sets = nil
	return nil
}

// Len returns the number of stored capture sets. Useful for testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sets)
}
