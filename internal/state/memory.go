package state

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory implementation for scaffolding and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory state store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return "", &NotFoundError{Key: key}
	}
	return value, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
