package http

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	contentcmd "github.com/carnelle/portfolio/internal/commands/content"
	mediacmd "github.com/carnelle/portfolio/internal/commands/media"
	"github.com/carnelle/portfolio/internal/editor"
	"github.com/carnelle/portfolio/internal/media"
	"github.com/carnelle/portfolio/internal/messages"
	"github.com/carnelle/portfolio/internal/records"
)

// AdminAPI registers the editing endpoints: the content editor session,
// record management, media uploads and the contact inbox. Every route sits
// behind a bearer token; an empty token disables the whole surface.
type AdminAPI struct {
	basePath    string
	token       string
	editor      editor.Editor
	content     *contentcmd.SaveContentHandler
	mediaRemove *mediacmd.RemoveMediaHandler
	articles    *records.Collection[records.ArticleLocale]
	projects    *records.Collection[records.ProjectLocale]
	library     *media.Library
	inbox       *messages.Inbox
}

// AdminOption mutates the AdminAPI configuration.
type AdminOption func(*AdminAPI)

// WithAdminBasePath overrides the base API path (defaults to "/admin/api").
func WithAdminBasePath(path string) AdminOption {
	return func(api *AdminAPI) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithAdminToken sets the bearer token guarding the admin routes.
func WithAdminToken(token string) AdminOption {
	return func(api *AdminAPI) { api.token = strings.TrimSpace(token) }
}

// WithAdminEditor wires the content editor.
func WithAdminEditor(ed editor.Editor) AdminOption {
	return func(api *AdminAPI) { api.editor = ed }
}

// WithAdminContentSave wires the direct language-save command handler.
func WithAdminContentSave(handler *contentcmd.SaveContentHandler) AdminOption {
	return func(api *AdminAPI) { api.content = handler }
}

// WithAdminArticles wires the article collection.
func WithAdminArticles(collection *records.Collection[records.ArticleLocale]) AdminOption {
	return func(api *AdminAPI) { api.articles = collection }
}

// WithAdminProjects wires the project collection.
func WithAdminProjects(collection *records.Collection[records.ProjectLocale]) AdminOption {
	return func(api *AdminAPI) { api.projects = collection }
}

// WithAdminMedia wires the media library.
func WithAdminMedia(library *media.Library) AdminOption {
	return func(api *AdminAPI) { api.library = library }
}

// WithAdminMediaRemove wires the media removal command handler.
func WithAdminMediaRemove(handler *mediacmd.RemoveMediaHandler) AdminOption {
	return func(api *AdminAPI) { api.mediaRemove = handler }
}

// WithAdminInbox wires the contact message inbox.
func WithAdminInbox(inbox *messages.Inbox) AdminOption {
	return func(api *AdminAPI) { api.inbox = inbox }
}

// NewAdminAPI constructs an AdminAPI instance.
func NewAdminAPI(opts ...AdminOption) *AdminAPI {
	api := &AdminAPI{
		basePath: "/admin/api",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// Register attaches the admin endpoints to the provided mux. Without a token
// the routes are not registered at all.
func (api *AdminAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: admin api is nil")
	}
	if api.token == "" {
		return nil
	}

	base := joinPath(api.basePath, "")

	api.registerEditorRoutes(mux, base)
	api.registerContentRoutes(mux, base)
	registerRecordRoutes(mux, api, base, "articles", api.articles)
	registerRecordRoutes(mux, api, base, "projects", api.projects)
	api.registerMediaRoutes(mux, base)
	api.registerMessageRoutes(mux, base)

	return nil
}

// guard wraps a handler with the bearer token check.
func (api *AdminAPI) guard(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		provided, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(provided)), []byte(api.token)) != 1 {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			return
		}
		next(w, r)
	}
}
