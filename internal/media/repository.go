package media

import (
	"context"
	"fmt"
	"sort"
	"sync"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ItemRepository abstracts storage for the media library.
type ItemRepository interface {
	// List returns all items, most recently uploaded first.
	List(ctx context.Context) ([]Item, error)
	// Insert stores a new item, assigning its ID when zero.
	Insert(ctx context.Context, item Item) (Item, error)
	// Delete removes an item by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// NotFoundError represents a missing media item.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("media item %q not found", e.Key)
}

// NewRowRepository builds the generic row repository for media items.
func NewRowRepository(db *bun.DB) repository.Repository[*Row] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Row]{
		NewRecord: func() *Row { return &Row{} },
		GetID: func(r *Row) uuid.UUID {
			return r.ID
		},
		SetID: func(r *Row, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(r *Row) string {
			if r == nil {
				return ""
			}
			return r.ID.String()
		},
	})
}

// BunItemRepository implements ItemRepository over the media_items table.
type BunItemRepository struct {
	repo repository.Repository[*Row]
}

func NewBunItemRepository(db *bun.DB) *BunItemRepository {
	return &BunItemRepository{repo: NewRowRepository(db)}
}

func (r *BunItemRepository) List(ctx context.Context) ([]Item, error) {
	rows, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.uploaded_at DESC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("media repository error: %w", err)
	}

	out := make([]Item, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toItem())
	}
	return out, nil
}

func (r *BunItemRepository) Insert(ctx context.Context, item Item) (Item, error) {
	created, err := r.repo.Create(ctx, rowFromItem(item))
	if err != nil {
		return Item{}, fmt.Errorf("media repository error: %w", err)
	}
	return created.toItem(), nil
}

func (r *BunItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.repo.Delete(ctx, &Row{ID: id}); err != nil {
		if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			return &NotFoundError{Key: id.String()}
		}
		return fmt.Errorf("media repository error: %w", err)
	}
	return nil
}

// MemoryItemRepository is an in-memory implementation for scaffolding and tests.
type MemoryItemRepository struct {
	mu    sync.RWMutex
	items []Item
}

// NewMemoryItemRepository creates an empty in-memory media repository.
func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{}
}

func (m *MemoryItemRepository) List(_ context.Context) ([]Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Item, len(m.items))
	copy(out, m.items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out, nil
}

func (m *MemoryItemRepository) Insert(_ context.Context, item Item) (Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	m.items = append(m.items, item)
	return item, nil
}

func (m *MemoryItemRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Key: id.String()}
}
