package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/carnelle/portfolio/internal/logging"
	"github.com/carnelle/portfolio/pkg/interfaces"
)

var (
	// ErrFileTooLarge rejects uploads over MaxUploadSize.
	ErrFileTooLarge = errors.New("media: file exceeds the size limit")
	// ErrTypeNotAllowed rejects uploads outside the accepted formats.
	ErrTypeNotAllowed = errors.New("media: file format not accepted")
	// ErrCategoryInvalid rejects uploads into an unknown category.
	ErrCategoryInvalid = errors.New("media: unknown category")
)

// UploadRequest carries one file into the library.
type UploadRequest struct {
	FileName    string
	ContentType string
	Size        int64
	Title       string
	Category    Category
	Body        io.Reader
}

// Library keeps the media items in memory, synchronized with blob storage
// and the item repository.
type Library struct {
	repo   ItemRepository
	blobs  interfaces.BlobStorage
	logger interfaces.Logger
	now    func() time.Time

	mu    sync.RWMutex
	items []Item
}

// LibraryOption configures the library at construction time.
type LibraryOption func(*Library)

// WithLibraryLogger overrides the default no-op logger.
func WithLibraryLogger(logger interfaces.Logger) LibraryOption {
	return func(l *Library) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithLibraryClock overrides the clock used to stamp uploads.
func WithLibraryClock(clock func() time.Time) LibraryOption {
	return func(l *Library) {
		if clock != nil {
			l.now = clock
		}
	}
}

// NewLibrary constructs the media library.
func NewLibrary(repo ItemRepository, blobs interfaces.BlobStorage, opts ...LibraryOption) *Library {
	l := &Library{
		repo:   repo,
		blobs:  blobs,
		logger: logging.NoOp(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Refresh reloads the library from storage, newest first. On failure the
// previously loaded items stay in place.
func (l *Library) Refresh(ctx context.Context) error {
	items, err := l.repo.List(ctx)
	if err != nil {
		l.logger.Warn("media refresh failed, keeping cached items", "error", err)
		return err
	}

	l.mu.Lock()
	l.items = items
	l.mu.Unlock()
	return nil
}

// Items returns every item, newest first.
func (l *Library) Items() []Item {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// ByCategory filters the library by category.
func (l *Library) ByCategory(category Category) []Item {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Item, 0)
	for _, item := range l.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// ByType filters the library by media type.
func (l *Library) ByType(mediaType Type) []Item {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Item, 0)
	for _, item := range l.items {
		if item.Type == mediaType {
			out = append(out, item)
		}
	}
	return out
}

// Upload validates the file, stores its blob, records the item and prepends
// it to the library. An empty title falls back to the file name.
func (l *Library) Upload(ctx context.Context, req UploadRequest) (Item, error) {
	if !AllowedMIME(req.ContentType) {
		return Item{}, ErrTypeNotAllowed
	}
	if req.Size > MaxUploadSize {
		return Item{}, ErrFileTooLarge
	}
	if !req.Category.Valid() {
		return Item{}, ErrCategoryInvalid
	}

	uploadedAt := l.now().UTC()
	blobPath := l.blobPath(req.FileName, uploadedAt)

	url, err := l.blobs.Put(ctx, blobPath, req.Body, interfaces.BlobPutOptions{
		ContentType: req.ContentType,
		Upsert:      true,
	})
	if err != nil {
		return Item{}, fmt.Errorf("media: store blob: %w", err)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = req.FileName
	}

	item, err := l.repo.Insert(ctx, Item{
		Name:        req.FileName,
		Title:       title,
		URL:         url,
		Path:        blobPath,
		UploadedAt:  uploadedAt,
		Type:        TypeForMIME(req.ContentType),
		Category:    req.Category,
	})
	if err != nil {
		return Item{}, err
	}

	l.mu.Lock()
	l.items = append([]Item{item}, l.items...)
	l.mu.Unlock()

	l.logger.Info("media uploaded", "id", item.ID.String(), "name", item.Name, "category", string(item.Category))
	return item, nil
}

// Remove deletes an item: blob first, then the record. A blob that fails to
// delete is logged and left for cleanup, the record still goes away.
func (l *Library) Remove(ctx context.Context, id uuid.UUID) error {
	l.mu.RLock()
	var found *Item
	for i := range l.items {
		if l.items[i].ID == id {
			item := l.items[i]
			found = &item
			break
		}
	}
	l.mu.RUnlock()

	if found == nil {
		return &NotFoundError{Key: id.String()}
	}

	if found.Path != "" {
		if err := l.blobs.Remove(ctx, found.Path); err != nil {
			l.logger.Warn("blob removal failed, orphaned file left behind", "path", found.Path, "error", err)
		}
	}

	if err := l.repo.Delete(ctx, id); err != nil {
		return err
	}

	l.mu.Lock()
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			break
		}
	}
	l.mu.Unlock()
	return nil
}

func (l *Library) blobPath(fileName string, uploadedAt time.Time) string {
	base := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, path.Base(fileName))
	return fmt.Sprintf("media/%d-%s", uploadedAt.UnixMilli(), base)
}
