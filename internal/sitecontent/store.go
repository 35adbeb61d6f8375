package sitecontent

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/carnelle/portfolio/internal/logging"
	"github.com/carnelle/portfolio/pkg/interfaces"
)

// ErrLanguageInvalid rejects updates targeting an unsupported language code.
var ErrLanguageInvalid = errors.New("sitecontent: unsupported language")

// Snapshot is what subscribers receive on every visible change: the document
// currently served and whether it comes from a preview overlay.
type Snapshot struct {
	Content LocalizedSiteContent
	Preview bool
}

// Store exposes the localized site document use-cases.
type Store interface {
	Load(ctx context.Context) error
	Current() LocalizedSiteContent
	Saved() LocalizedSiteContent
	Language(lang Language) SiteContent
	UpdateLanguage(ctx context.Context, lang Language, content SiteContent) error
	SetPreview(doc LocalizedSiteContent)
	ClearPreview()
	PreviewActive() bool
	Subscribe() (<-chan Snapshot, func())
}

// StoreOption configures the store at construction time.
type StoreOption func(*store)

// WithStoreLogger overrides the default no-op logger.
func WithStoreLogger(logger interfaces.Logger) StoreOption {
	return func(s *store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStoreClock overrides the clock used to stamp saved documents.
func WithStoreClock(clock func() time.Time) StoreOption {
	return func(s *store) {
		if clock != nil {
			s.now = clock
		}
	}
}

// store implements Store.
type store struct {
	repo   DocumentRepository
	logger interfaces.Logger
	now    func() time.Time

	mu      sync.RWMutex
	current LocalizedSiteContent
	preview *LocalizedSiteContent

	subMu   sync.Mutex
	subs    map[int]chan Snapshot
	nextSub int
}

// NewStore constructs a store backed by repo. Until Load succeeds the store
// serves the built-in default document.
func NewStore(repo DocumentRepository, opts ...StoreOption) Store {
	s := &store{
		repo:    repo,
		logger:  logging.NoOp(),
		now:     time.Now,
		current: MustDefaultContent(),
		subs:    make(map[int]chan Snapshot),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load fetches the persisted document. A missing row and an unreadable
// payload both fall back to the in-memory defaults rather than failing the
// caller: the site must render even when storage is degraded.
func (s *store) Load(ctx context.Context) error {
	record, err := s.repo.Get(ctx, DocumentKey)
	if err != nil {
		if IsNotFound(err) {
			s.logger.Debug("no stored site document, serving defaults", "key", DocumentKey)
			return nil
		}
		return err
	}

	doc, err := record.Decode()
	if err != nil {
		s.logger.Warn("stored site document unreadable, serving defaults", "error", err)
		return nil
	}

	s.mu.Lock()
	s.current = doc
	s.mu.Unlock()

	s.notify()
	return nil
}

// Current returns the document being served: the preview overlay when one is
// active, the persisted document otherwise.
func (s *store) Current() LocalizedSiteContent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.preview != nil {
		return *s.preview
	}
	return s.current
}

// Saved returns the persisted document, ignoring any preview overlay.
func (s *store) Saved() LocalizedSiteContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Language projects the served document onto one language.
func (s *store) Language(lang Language) SiteContent {
	return s.Current().Language(lang)
}

// UpdateLanguage replaces one language's sub-document and persists the
// result. The in-memory document is updated before the write: a failed
// persist keeps the new state visible and reports the error, and the next
// successful save writes the full current document anyway.
func (s *store) UpdateLanguage(ctx context.Context, lang Language, content SiteContent) error {
	if !lang.Valid() {
		return ErrLanguageInvalid
	}
	if content.Theme == "" {
		content.Theme = DefaultTheme
	}

	s.mu.Lock()
	s.current = s.current.WithLanguage(lang, content)
	doc := s.current
	s.mu.Unlock()

	s.notify()

	record, err := EncodeDocument(DocumentKey, doc, s.now().UTC())
	if err != nil {
		return err
	}
	if err := ValidateDocument(record.Content); err != nil {
		return err
	}
	if err := s.repo.Put(ctx, record); err != nil {
		s.logger.Error("persist site document failed", "key", DocumentKey, "error", err)
		return err
	}

	s.logger.Info("site document saved", "key", DocumentKey, "lang", string(lang))
	return nil
}

// SetPreview overlays doc on top of the persisted document until cleared.
func (s *store) SetPreview(doc LocalizedSiteContent) {
	s.mu.Lock()
	s.preview = &doc
	s.mu.Unlock()

	s.notify()
}

// ClearPreview removes the overlay, reverting to the persisted document.
func (s *store) ClearPreview() {
	s.mu.Lock()
	cleared := s.preview != nil
	s.preview = nil
	s.mu.Unlock()

	if cleared {
		s.notify()
	}
}

func (s *store) PreviewActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.preview != nil
}

// Subscribe registers for change snapshots. The channel holds the latest
// snapshot only: a slow consumer sees the newest state, never a backlog.
// The returned func cancels the subscription.
func (s *store) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subMu.Unlock()

	cancel := func() {
		s.subMu.Lock()
		if existing, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(existing)
		}
		s.subMu.Unlock()
	}

	return ch, cancel
}

func (s *store) notify() {
	s.mu.RLock()
	snap := Snapshot{Content: s.current, Preview: s.preview != nil}
	if s.preview != nil {
		snap.Content = *s.preview
	}
	s.mu.RUnlock()

	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
