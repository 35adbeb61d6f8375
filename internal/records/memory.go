package records

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory implementation for scaffolding and tests.
type MemoryRepository[L any] struct {
	mu       sync.RWMutex
	resource string
	records  []Record[L]
}

// NewMemoryRepository creates an empty in-memory collection repository.
// resource names the collection in errors, e.g. "article".
func NewMemoryRepository[L any](resource string) *MemoryRepository[L] {
	return &MemoryRepository[L]{resource: resource}
}

func (m *MemoryRepository[L]) List(_ context.Context) ([]Record[L], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Record[L], len(m.records))
	copy(out, m.records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortIndex < out[j].SortIndex
	})
	return out, nil
}

func (m *MemoryRepository[L]) Insert(_ context.Context, record Record[L]) (Record[L], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	m.records = append(m.records, record)
	return record, nil
}

func (m *MemoryRepository[L]) Update(_ context.Context, record Record[L]) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.records {
		if m.records[i].ID == record.ID {
			m.records[i] = record
			return nil
		}
	}
	return &NotFoundError{Resource: m.resource, Key: record.ID.String()}
}

func (m *MemoryRepository[L]) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.records {
		if m.records[i].ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Resource: m.resource, Key: id.String()}
}
