package store

import (
	"context"
	"sync"

	"github.com/roach88/pagekit/internal/record"
)

// Memory is an in-memory Store.
//
// An ordered key slice sits beside the value map so ListAll reproduces
// insertion order; the engine's stable sort breaks final ties by listing
// order, so that order has to be deterministic.
//
// Thread-safety: guarded by an RWMutex, safe for concurrent use. A query
// running against a ListAll snapshot is isolated from later mutations
// only by virtue of the snapshot copy.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
	keys   []string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// ListAll returns a snapshot of all records in insertion order.
func (m *Memory) ListAll(_ context.Context) ([]record.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]record.Record, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, record.Record{Key: k, Value: m.values[k]})
	}
	return out, nil
}

// Find returns the record for key.
func (m *Memory) Find(_ context.Context, key string) (record.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return record.Record{}, NewNotFoundError(key)
	}
	return record.Record{Key: key, Value: v}, nil
}

// Create inserts a new record, failing on an existing key.
func (m *Memory) Create(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.values[key]; exists {
		return NewConflictError(key)
	}
	m.values[key] = value
	m.keys = append(m.keys, key)
	return nil
}

// Upsert inserts or replaces. A replaced record keeps its original
// position in the listing order.
func (m *Memory) Upsert(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return nil
}

// Update replaces the value of an existing key.
func (m *Memory) Update(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.values[key]; !exists {
		return NewNotFoundError(key)
	}
	m.values[key] = value
	return nil
}

// Delete removes the record for key.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.values[key]; !exists {
		return NewNotFoundError(key)
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return nil
}
