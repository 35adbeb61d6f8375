package editor

import (
	"context"
	"sync"

	"github.com/carnelle/portfolio/internal/logging"
	"github.com/carnelle/portfolio/internal/preview"
	"github.com/carnelle/portfolio/internal/sitecontent"
	"github.com/carnelle/portfolio/pkg/interfaces"
)

// Editor is the site-content editing session. It edits one language at a
// time through a schema-driven form, echoes every change into the preview
// channel, and writes back to the content store on save.
type Editor interface {
	// Open starts or restarts the session on lang, loading the saved
	// document into the form.
	Open(ctx context.Context, lang sitecontent.Language) error
	// Lang returns the language being edited.
	Lang() sitecontent.Language
	// SwitchLanguage re-opens the session on another language. Unsaved
	// edits of the previous language are discarded and the preview
	// overlay is dropped.
	SwitchLanguage(ctx context.Context, lang sitecontent.Language) error

	// Value reads a buffered form value by dotted path.
	Value(path string) (any, error)
	// Set writes a form value and republishes the preview.
	Set(ctx context.Context, path string, value any) error
	// AppendRow adds a list row and republishes the preview.
	AppendRow(ctx context.Context, path string) error
	// RemoveRow drops a list row and republishes the preview. The last
	// row of a list cannot be removed.
	RemoveRow(ctx context.Context, path string, index int) error

	// Validate checks the buffered values against the editing rules.
	Validate() error
	// Save validates, persists the edited language and clears the
	// preview overlay.
	Save(ctx context.Context) error
	// ClosePreview drops the overlay without saving.
	ClosePreview(ctx context.Context) error
}

// EditorOption configures the editor at construction time.
type EditorOption func(*siteEditor)

// WithEditorLogger overrides the default no-op logger.
func WithEditorLogger(logger interfaces.Logger) EditorOption {
	return func(e *siteEditor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

type siteEditor struct {
	store   sitecontent.Store
	channel preview.Channel
	logger  interfaces.Logger

	mu   sync.Mutex
	lang sitecontent.Language
	base sitecontent.LocalizedSiteContent
	form *Form
}

// NewEditor constructs an editor over the content store and preview channel.
// Call Open before editing.
func NewEditor(store sitecontent.Store, channel preview.Channel, opts ...EditorOption) Editor {
	e := &siteEditor{
		store:   store,
		channel: channel,
		logger:  logging.NoOp(),
		lang:    sitecontent.DefaultLanguage,
		form:    NewForm(SiteContentSchema()),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *siteEditor) Open(ctx context.Context, lang sitecontent.Language) error {
	if !lang.Valid() {
		return sitecontent.ErrLanguageInvalid
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.lang = lang
	e.base = e.store.Saved()
	if err := e.form.Hydrate(e.base.Language(lang)); err != nil {
		return err
	}

	e.logger.Debug("editing session opened", "lang", string(lang))
	return nil
}

func (e *siteEditor) Lang() sitecontent.Language {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lang
}

func (e *siteEditor) SwitchLanguage(ctx context.Context, lang sitecontent.Language) error {
	if !lang.Valid() {
		return sitecontent.ErrLanguageInvalid
	}

	e.mu.Lock()
	e.lang = lang
	err := e.form.Hydrate(e.base.Language(lang))
	e.mu.Unlock()
	if err != nil {
		return err
	}

	// the discarded draft must stop shadowing the saved document
	return e.channel.Clear(ctx)
}

func (e *siteEditor) Value(path string) (any, error) {
	return e.form.Value(path)
}

func (e *siteEditor) Set(ctx context.Context, path string, value any) error {
	if err := e.form.Set(path, value); err != nil {
		return err
	}
	return e.echo(ctx)
}

func (e *siteEditor) AppendRow(ctx context.Context, path string) error {
	if err := e.form.AppendRow(path); err != nil {
		return err
	}
	return e.echo(ctx)
}

func (e *siteEditor) RemoveRow(ctx context.Context, path string, index int) error {
	if err := e.form.RemoveRow(path, index); err != nil {
		return err
	}
	return e.echo(ctx)
}

func (e *siteEditor) Validate() error {
	return e.form.Validate()
}

func (e *siteEditor) Save(ctx context.Context) error {
	if err := e.form.Validate(); err != nil {
		return err
	}

	var draft sitecontent.SiteContent
	if err := e.form.Extract(&draft); err != nil {
		return err
	}

	e.mu.Lock()
	lang := e.lang
	e.mu.Unlock()

	if err := e.store.UpdateLanguage(ctx, lang, draft); err != nil {
		return err
	}

	e.mu.Lock()
	e.base = e.base.WithLanguage(lang, draft)
	e.mu.Unlock()

	return e.channel.Clear(ctx)
}

func (e *siteEditor) ClosePreview(ctx context.Context) error {
	return e.channel.Clear(ctx)
}

// echo pushes the current draft into the preview channel so the public
// rendering follows every keystroke.
func (e *siteEditor) echo(ctx context.Context) error {
	var draft sitecontent.SiteContent
	if err := e.form.Extract(&draft); err != nil {
		return err
	}

	e.mu.Lock()
	overlay := e.base.WithLanguage(e.lang, draft)
	e.mu.Unlock()

	return e.channel.Publish(ctx, overlay)
}
