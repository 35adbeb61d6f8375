package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/carnelle/portfolio/internal/i18n"
	"github.com/carnelle/portfolio/internal/media"
	"github.com/carnelle/portfolio/internal/messages"
	"github.com/carnelle/portfolio/internal/records"
	"github.com/carnelle/portfolio/internal/sitecontent"
)

// PublicAPI serves the visitor-facing endpoints: localized content, published
// records, the media catalogue and contact submissions.
type PublicAPI struct {
	basePath  string
	content   sitecontent.Store
	languages i18n.Selector
	articles  *records.Collection[records.ArticleLocale]
	projects  *records.Collection[records.ProjectLocale]
	library   *media.Library
	inbox     *messages.Inbox
}

// PublicOption mutates the PublicAPI configuration.
type PublicOption func(*PublicAPI)

// WithPublicBasePath overrides the base API path (defaults to "/api").
func WithPublicBasePath(path string) PublicOption {
	return func(api *PublicAPI) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithPublicContent wires the site content store.
func WithPublicContent(store sitecontent.Store) PublicOption {
	return func(api *PublicAPI) { api.content = store }
}

// WithPublicLanguages wires the language selector.
func WithPublicLanguages(selector i18n.Selector) PublicOption {
	return func(api *PublicAPI) { api.languages = selector }
}

// WithPublicArticles wires the article collection.
func WithPublicArticles(collection *records.Collection[records.ArticleLocale]) PublicOption {
	return func(api *PublicAPI) { api.articles = collection }
}

// WithPublicProjects wires the project collection.
func WithPublicProjects(collection *records.Collection[records.ProjectLocale]) PublicOption {
	return func(api *PublicAPI) { api.projects = collection }
}

// WithPublicMedia wires the media library.
func WithPublicMedia(library *media.Library) PublicOption {
	return func(api *PublicAPI) { api.library = library }
}

// WithPublicInbox wires the contact message inbox.
func WithPublicInbox(inbox *messages.Inbox) PublicOption {
	return func(api *PublicAPI) { api.inbox = inbox }
}

// NewPublicAPI constructs a PublicAPI instance.
func NewPublicAPI(opts ...PublicOption) *PublicAPI {
	api := &PublicAPI{
		basePath: "/api",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// Register attaches the public endpoints to the provided mux.
func (api *PublicAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: public api is nil")
	}

	base := joinPath(api.basePath, "")
	mux.HandleFunc("GET "+joinPath(base, "content"), api.handleContent)
	mux.HandleFunc("PUT "+joinPath(base, "language"), api.handleLanguage)
	mux.HandleFunc("GET "+joinPath(base, "articles"), api.handleArticles)
	mux.HandleFunc("GET "+joinPath(base, "projects"), api.handleProjects)
	mux.HandleFunc("GET "+joinPath(base, "media"), api.handleMedia)
	mux.HandleFunc("POST "+joinPath(base, "contact"), api.handleContact)
	return nil
}

type contentResponse struct {
	Lang    sitecontent.Language    `json:"lang"`
	Preview bool                    `json:"preview"`
	Content sitecontent.SiteContent `json:"content"`
}

func (api *PublicAPI) handleContent(w http.ResponseWriter, r *http.Request) {
	if api.content == nil || api.languages == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	lang := api.languages.Resolve(r.Context(), r.URL.Query().Get("lang"))
	writeJSON(w, http.StatusOK, contentResponse{
		Lang:    lang,
		Preview: api.content.PreviewActive(),
		Content: api.content.Language(lang),
	})
}

type languagePayload struct {
	Lang string `json:"lang"`
}

func (api *PublicAPI) handleLanguage(w http.ResponseWriter, r *http.Request) {
	if api.languages == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload languagePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	lang, ok := sitecontent.ParseLanguage(payload.Lang)
	if !ok {
		writeError(w, sitecontent.ErrLanguageInvalid)
		return
	}
	if err := api.languages.SetLanguage(r.Context(), lang); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, languagePayload{Lang: string(lang)})
}

func (api *PublicAPI) handleArticles(w http.ResponseWriter, r *http.Request) {
	if api.articles == nil || api.languages == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	lang := api.languages.Resolve(r.Context(), r.URL.Query().Get("lang"))
	writeJSON(w, http.StatusOK, api.articles.GetForLang(lang, false))
}

func (api *PublicAPI) handleProjects(w http.ResponseWriter, r *http.Request) {
	if api.projects == nil || api.languages == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	lang := api.languages.Resolve(r.Context(), r.URL.Query().Get("lang"))
	writeJSON(w, http.StatusOK, api.projects.GetForLang(lang, false))
}

func (api *PublicAPI) handleMedia(w http.ResponseWriter, r *http.Request) {
	if api.library == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	query := r.URL.Query()
	if raw := strings.TrimSpace(query.Get("category")); raw != "" {
		category := media.Category(raw)
		if !category.Valid() {
			writeError(w, media.ErrCategoryInvalid)
			return
		}
		writeJSON(w, http.StatusOK, api.library.ByCategory(category))
		return
	}
	if raw := strings.TrimSpace(query.Get("type")); raw != "" {
		writeJSON(w, http.StatusOK, api.library.ByType(media.Type(raw)))
		return
	}
	writeJSON(w, http.StatusOK, api.library.Items())
}

func (api *PublicAPI) handleContact(w http.ResponseWriter, r *http.Request) {
	if api.inbox == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload messages.SubmitRequest
	if err := decodeJSON(r, &payload); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	message, err := api.inbox.Submit(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, message)
}
