package sitecontent

import (
	"context"
	"sync"
)

// MemoryDocumentRepository is an in-memory implementation for scaffolding and tests.
type MemoryDocumentRepository struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewMemoryDocumentRepository creates an empty in-memory document repository.
func NewMemoryDocumentRepository() *MemoryDocumentRepository {
	return &MemoryDocumentRepository{
		docs: make(map[string]*Document),
	}
}

// Get retrieves a document by key, returning NotFoundError when absent.
func (m *MemoryDocumentRepository) Get(_ context.Context, key string) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[key]
	if !ok {
		return nil, &NotFoundError{Resource: "site_content", Key: key}
	}
	return cloneDocument(doc), nil
}

// Put inserts or replaces a document.
func (m *MemoryDocumentRepository) Put(_ context.Context, doc *Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.docs[doc.Key] = cloneDocument(doc)
	return nil
}

func cloneDocument(src *Document) *Document {
	if src == nil {
		return nil
	}
	copied := *src
	if len(src.Content) > 0 {
		copied.Content = append([]byte(nil), src.Content...)
	}
	return &copied
}
