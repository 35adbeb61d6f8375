package i18n

import (
	"context"
	"sync"

	"github.com/carnelle/portfolio/internal/logging"
	"github.com/carnelle/portfolio/internal/sitecontent"
	"github.com/carnelle/portfolio/internal/state"
	"github.com/carnelle/portfolio/pkg/interfaces"
)

// Selector resolves and persists the active site language.
type Selector interface {
	// Resolve picks the language for a request: a valid one-shot override
	// wins, then the persisted preference, then the default. A valid
	// override is persisted as the new preference.
	Resolve(ctx context.Context, override string) sitecontent.Language
	Current(ctx context.Context) sitecontent.Language
	SetLanguage(ctx context.Context, lang sitecontent.Language) error
}

// SelectorOption configures the selector at construction time.
type SelectorOption func(*selector)

// WithSelectorLogger overrides the default no-op logger.
func WithSelectorLogger(logger interfaces.Logger) SelectorOption {
	return func(s *selector) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaultLanguage overrides the language served before any preference is
// persisted. Invalid values are ignored.
func WithDefaultLanguage(lang sitecontent.Language) SelectorOption {
	return func(s *selector) {
		if lang.Valid() {
			s.fallback = lang
		}
	}
}

type selector struct {
	store    state.Store
	logger   interfaces.Logger
	fallback sitecontent.Language

	mu     sync.RWMutex
	cached sitecontent.Language
	loaded bool
}

// NewSelector constructs a selector persisting its preference in store.
func NewSelector(store state.Store, opts ...SelectorOption) Selector {
	s := &selector{
		store:    store,
		logger:   logging.NoOp(),
		fallback: sitecontent.DefaultLanguage,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *selector) Resolve(ctx context.Context, override string) sitecontent.Language {
	if lang, ok := sitecontent.ParseLanguage(override); ok {
		if err := s.SetLanguage(ctx, lang); err != nil {
			s.logger.Warn("persist language override failed", "lang", string(lang), "error", err)
		}
		return lang
	}
	return s.Current(ctx)
}

func (s *selector) Current(ctx context.Context) sitecontent.Language {
	s.mu.RLock()
	if s.loaded {
		lang := s.cached
		s.mu.RUnlock()
		return lang
	}
	s.mu.RUnlock()

	lang := s.fallback
	if raw, err := s.store.Get(ctx, state.KeyLanguage); err == nil {
		if parsed, ok := sitecontent.ParseLanguage(raw); ok {
			lang = parsed
		}
	}

	s.mu.Lock()
	s.cached = lang
	s.loaded = true
	s.mu.Unlock()

	return lang
}

func (s *selector) SetLanguage(ctx context.Context, lang sitecontent.Language) error {
	if !lang.Valid() {
		return sitecontent.ErrLanguageInvalid
	}

	s.mu.Lock()
	s.cached = lang
	s.loaded = true
	s.mu.Unlock()

	return s.store.Set(ctx, state.KeyLanguage, string(lang))
}
