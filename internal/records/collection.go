package records

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/carnelle/portfolio/internal/logging"
	"github.com/carnelle/portfolio/internal/sitecontent"
	"github.com/carnelle/portfolio/pkg/interfaces"
)

// ErrStatusInvalid rejects records carrying an unknown publication state.
var ErrStatusInvalid = errors.New("records: invalid status")

// Collection keeps an ordered bilingual record set in memory, synchronized
// with its repository. Mutations apply locally only after the repository
// accepted them, so a failed write leaves the served items untouched.
type Collection[L any] struct {
	repo     Repository[L]
	resource string
	logger   interfaces.Logger

	mu    sync.RWMutex
	items []Record[L]
}

// CollectionOption configures a collection at construction time.
type CollectionOption[L any] func(*Collection[L])

// WithCollectionLogger overrides the default no-op logger.
func WithCollectionLogger[L any](logger interfaces.Logger) CollectionOption[L] {
	return func(c *Collection[L]) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCollection constructs a collection over repo. resource names the
// collection in logs, e.g. "article".
func NewCollection[L any](repo Repository[L], resource string, opts ...CollectionOption[L]) *Collection[L] {
	c := &Collection[L]{
		repo:     repo,
		resource: resource,
		logger:   logging.NoOp(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Refresh reloads the collection from storage. On failure the previously
// loaded items stay in place so the site keeps rendering.
func (c *Collection[L]) Refresh(ctx context.Context) error {
	items, err := c.repo.List(ctx)
	if err != nil {
		c.logger.Warn("refresh failed, keeping cached items", "resource", c.resource, "error", err)
		return err
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}

// Items returns every record, drafts included, in storage order.
func (c *Collection[L]) Items() []Record[L] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Record[L], len(c.items))
	copy(out, c.items)
	return out
}

// Get returns one record by ID.
func (c *Collection[L]) Get(id uuid.UUID) (Record[L], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return Record[L]{}, false
}

// GetForLang projects the collection onto one language: published records
// only unless includeDrafts, ordered by sort index ascending. Records with
// equal indexes keep their arrival order.
func (c *Collection[L]) GetForLang(lang sitecontent.Language, includeDrafts bool) []L {
	c.mu.RLock()
	filtered := make([]Record[L], 0, len(c.items))
	for _, item := range c.items {
		if includeDrafts || item.Status == StatusPublished {
			filtered = append(filtered, item)
		}
	}
	c.mu.RUnlock()

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].SortIndex < filtered[j].SortIndex
	})

	out := make([]L, 0, len(filtered))
	for _, item := range filtered {
		out = append(out, item.Content.Language(lang))
	}
	return out
}

// Add persists a new record and appends it locally once stored.
func (c *Collection[L]) Add(ctx context.Context, record Record[L]) (Record[L], error) {
	if !record.Status.Valid() {
		return Record[L]{}, ErrStatusInvalid
	}

	created, err := c.repo.Insert(ctx, record)
	if err != nil {
		c.logger.Error("add failed", "resource", c.resource, "error", err)
		return Record[L]{}, err
	}

	c.mu.Lock()
	c.items = append(c.items, created)
	c.mu.Unlock()

	c.logger.Info("record added", "resource", c.resource, "id", created.ID.String())
	return created, nil
}

// Update persists a changed record and replaces it locally once stored.
func (c *Collection[L]) Update(ctx context.Context, record Record[L]) error {
	if !record.Status.Valid() {
		return ErrStatusInvalid
	}

	if err := c.repo.Update(ctx, record); err != nil {
		c.logger.Error("update failed", "resource", c.resource, "id", record.ID.String(), "error", err)
		return err
	}

	c.mu.Lock()
	for i := range c.items {
		if c.items[i].ID == record.ID {
			c.items[i] = record
			break
		}
	}
	c.mu.Unlock()
	return nil
}

// Remove deletes a record and drops it locally once storage confirmed.
func (c *Collection[L]) Remove(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		c.logger.Error("remove failed", "resource", c.resource, "id", id.String(), "error", err)
		return err
	}

	c.mu.Lock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	return nil
}
