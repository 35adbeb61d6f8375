// Package portfolio wires the bilingual portfolio content service: the
// localized site document, article and project collections, the media
// library, the contact inbox and the editing surface on top of them.
package portfolio

import (
	"context"
	"fmt"
	nethttp "net/http"
	"strings"

	contentcmd "github.com/carnelle/portfolio/internal/commands/content"
	mediacmd "github.com/carnelle/portfolio/internal/commands/media"
	"github.com/carnelle/portfolio/internal/editor"
	portfoliohttp "github.com/carnelle/portfolio/internal/http"
	"github.com/carnelle/portfolio/internal/i18n"
	"github.com/carnelle/portfolio/internal/logging"
	"github.com/carnelle/portfolio/internal/logging/gologger"
	"github.com/carnelle/portfolio/internal/media"
	"github.com/carnelle/portfolio/internal/messages"
	"github.com/carnelle/portfolio/internal/preview"
	"github.com/carnelle/portfolio/internal/records"
	"github.com/carnelle/portfolio/internal/sitecontent"
	"github.com/carnelle/portfolio/internal/state"
	"github.com/carnelle/portfolio/internal/storage"
	"github.com/carnelle/portfolio/pkg/interfaces"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
)

// ArticleCollection exports the article collection contract.
type ArticleCollection = *records.Collection[records.ArticleLocale]

// ProjectCollection exports the project collection contract.
type ProjectCollection = *records.Collection[records.ProjectLocale]

// Module is the top level portfolio runtime facade.
type Module struct {
	cfg Config

	db       *bun.DB
	ownsDB   bool
	provider interfaces.LoggerProvider
	blobs    interfaces.BlobStorage
	notifier interfaces.ContactNotifier

	content   sitecontent.Store
	languages i18n.Selector
	channel   preview.Channel
	editor    editor.Editor
	articles  ArticleCollection
	projects  ProjectCollection
	library   *media.Library
	inbox     *messages.Inbox
}

// Option overrides a wiring decision during construction.
type Option func(*Module)

// WithDB injects an existing bun handle instead of opening one from the
// database configuration. The caller keeps ownership and closes it.
func WithDB(db *bun.DB) Option {
	return func(m *Module) {
		if db != nil {
			m.db = db
		}
	}
}

// WithLoggerProvider overrides the logger provider built from the logging
// configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		if provider != nil {
			m.provider = provider
		}
	}
}

// WithBlobStorage overrides the filesystem blob store built from the blob
// configuration.
func WithBlobStorage(blobs interfaces.BlobStorage) Option {
	return func(m *Module) {
		if blobs != nil {
			m.blobs = blobs
		}
	}
}

// WithContactNotifier wires an outbound notifier for contact submissions.
func WithContactNotifier(notifier interfaces.ContactNotifier) Option {
	return func(m *Module) {
		m.notifier = notifier
	}
}

// New constructs the portfolio module from the provided configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	if m.provider == nil {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	if m.db == nil {
		db, err := storage.Open(cfg.Database)
		if err != nil {
			return nil, err
		}
		m.db = db
		m.ownsDB = true
	}

	if m.blobs == nil {
		blobs, err := storage.NewFileBlobStorage(cfg.Blobs.Dir, cfg.Blobs.BaseURL)
		if err != nil {
			return nil, err
		}
		m.blobs = blobs
	}

	articleRepo, projectRepo, err := m.buildRecordRepositories()
	if err != nil {
		return nil, err
	}

	stateStore := state.NewBunStore(m.db)
	m.content = sitecontent.NewStore(
		sitecontent.NewBunDocumentRepository(m.db),
		sitecontent.WithStoreLogger(logging.ContentLogger(m.provider)),
	)
	m.languages = i18n.NewSelector(stateStore,
		i18n.WithSelectorLogger(logging.ContentLogger(m.provider)),
		i18n.WithDefaultLanguage(sitecontent.Language(m.cfg.Content.DefaultLanguage)),
	)
	m.channel = preview.NewChannel(stateStore, m.content,
		preview.WithChannelLogger(logging.PreviewLogger(m.provider)),
	)
	m.editor = editor.NewEditor(m.content, m.channel,
		editor.WithEditorLogger(logging.EditorLogger(m.provider)),
	)
	m.articles = records.NewCollection(articleRepo, "article",
		records.WithCollectionLogger[records.ArticleLocale](logging.RecordsLogger(m.provider)),
	)
	m.projects = records.NewCollection(projectRepo, "project",
		records.WithCollectionLogger[records.ProjectLocale](logging.RecordsLogger(m.provider)),
	)
	m.library = media.NewLibrary(media.NewBunItemRepository(m.db), m.blobs,
		media.WithLibraryLogger(logging.MediaLogger(m.provider)),
	)

	inboxOpts := []messages.InboxOption{
		messages.WithInboxLogger(logging.MessagesLogger(m.provider)),
	}
	if m.notifier != nil {
		inboxOpts = append(inboxOpts, messages.WithNotifier(m.notifier))
	}
	m.inbox = messages.NewInbox(messages.NewBunMessageRepository(m.db), inboxOpts...)

	return m, nil
}

// Load brings storage up to date and warms every in-memory view: the site
// document, a pending preview draft, records, media and messages.
func (m *Module) Load(ctx context.Context) error {
	if err := storage.EnsureSchema(ctx, m.db); err != nil {
		return err
	}
	if err := m.content.Load(ctx); err != nil {
		return err
	}
	if err := m.channel.Restore(ctx); err != nil {
		return err
	}

	// Collection refreshes tolerate failure: the services keep serving
	// whatever they already hold.
	logger := logging.ModuleLogger(m.provider, "")
	if err := m.articles.Refresh(ctx); err != nil {
		logger.Warn("article refresh failed", "error", err)
	}
	if err := m.projects.Refresh(ctx); err != nil {
		logger.Warn("project refresh failed", "error", err)
	}
	if err := m.library.Refresh(ctx); err != nil {
		logger.Warn("media refresh failed", "error", err)
	}
	if err := m.inbox.Refresh(ctx); err != nil {
		logger.Warn("message refresh failed", "error", err)
	}
	return nil
}

// Mount registers the public and admin HTTP APIs on mux.
func (m *Module) Mount(mux *nethttp.ServeMux) error {
	public := portfoliohttp.NewPublicAPI(
		portfoliohttp.WithPublicContent(m.content),
		portfoliohttp.WithPublicLanguages(m.languages),
		portfoliohttp.WithPublicArticles(m.articles),
		portfoliohttp.WithPublicProjects(m.projects),
		portfoliohttp.WithPublicMedia(m.library),
		portfoliohttp.WithPublicInbox(m.inbox),
	)
	if err := public.Register(mux); err != nil {
		return err
	}

	saveContent := contentcmd.NewSaveContentHandler(m.content, logging.CommandsLogger(m.provider))
	removeMedia := mediacmd.NewRemoveMediaHandler(m.library, logging.CommandsLogger(m.provider))

	admin := portfoliohttp.NewAdminAPI(
		portfoliohttp.WithAdminToken(m.cfg.Admin.Token),
		portfoliohttp.WithAdminEditor(m.editor),
		portfoliohttp.WithAdminContentSave(saveContent),
		portfoliohttp.WithAdminMediaRemove(removeMedia),
		portfoliohttp.WithAdminArticles(m.articles),
		portfoliohttp.WithAdminProjects(m.projects),
		portfoliohttp.WithAdminMedia(m.library),
		portfoliohttp.WithAdminInbox(m.inbox),
	)
	return admin.Register(mux)
}

// Close releases the database handle when the module opened it.
func (m *Module) Close() error {
	if m == nil || m.db == nil || !m.ownsDB {
		return nil
	}
	return m.db.Close()
}

// Content returns the localized site content store.
func (m *Module) Content() sitecontent.Store { return m.content }

// Languages returns the language selector.
func (m *Module) Languages() i18n.Selector { return m.languages }

// Preview returns the preview channel.
func (m *Module) Preview() preview.Channel { return m.channel }

// Editor returns the content editor.
func (m *Module) Editor() editor.Editor { return m.editor }

// Articles returns the article collection.
func (m *Module) Articles() ArticleCollection { return m.articles }

// Projects returns the project collection.
func (m *Module) Projects() ProjectCollection { return m.projects }

// Media returns the media library.
func (m *Module) Media() *media.Library { return m.library }

// Messages returns the contact inbox.
func (m *Module) Messages() *messages.Inbox { return m.inbox }

// DB exposes the underlying bun handle for advanced integrations.
func (m *Module) DB() *bun.DB { return m.db }

func (m *Module) buildRecordRepositories() (records.Repository[records.ArticleLocale], records.Repository[records.ProjectLocale], error) {
	if !m.cfg.Cache.Enabled {
		return records.NewBunArticleRepository(m.db), records.NewBunProjectRepository(m.db), nil
	}

	cacheCfg := repocache.DefaultConfig()
	if ttl := m.cfg.Cache.TTLDuration(); ttl > 0 {
		cacheCfg.TTL = ttl
	}
	cacheSvc, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("portfolio: cache service: %w", err)
	}
	keySerializer := repocache.NewDefaultKeySerializer()
	return records.NewBunArticleRepositoryWithCache(m.db, cacheSvc, keySerializer),
		records.NewBunProjectRepositoryWithCache(m.db, cacheSvc, keySerializer),
		nil
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	format := cfg.Format
	if strings.EqualFold(strings.TrimSpace(cfg.Provider), "console") && format == "" {
		format = "console"
	}
	return gologger.NewProvider(gologger.Config{
		Level:     cfg.Level,
		Format:    format,
		AddSource: cfg.AddSource,
		Focus:     cfg.Focus,
	})
}
