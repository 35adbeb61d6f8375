package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carnelle/portfolio/internal/i18n"
	"github.com/carnelle/portfolio/internal/messages"
	"github.com/carnelle/portfolio/internal/records"
	"github.com/carnelle/portfolio/internal/sitecontent"
	"github.com/carnelle/portfolio/internal/state"
)

func TestPublicAPI_ContentFollowsLanguage(t *testing.T) {
	mux, _ := setupPublicAPI(t)

	resp := doJSONRequest(t, mux, http.MethodGet, "/api/content", nil, http.StatusOK)
	var payload struct {
		Lang    string                  `json:"lang"`
		Preview bool                    `json:"preview"`
		Content sitecontent.SiteContent `json:"content"`
	}
	decodeJSONBody(t, resp, &payload)
	if payload.Lang != "fr" {
		t.Fatalf("expected default lang fr, got %q", payload.Lang)
	}
	if payload.Preview {
		t.Fatalf("expected no preview overlay")
	}
	if payload.Content.Header.BrandTitle == "" {
		t.Fatalf("expected content to carry the default document")
	}

	enResp := doJSONRequest(t, mux, http.MethodGet, "/api/content?lang=en", nil, http.StatusOK)
	decodeJSONBody(t, enResp, &payload)
	if payload.Lang != "en" {
		t.Fatalf("expected lang override en, got %q", payload.Lang)
	}

	// The override persists as the new preference.
	nextResp := doJSONRequest(t, mux, http.MethodGet, "/api/content", nil, http.StatusOK)
	decodeJSONBody(t, nextResp, &payload)
	if payload.Lang != "en" {
		t.Fatalf("expected persisted lang en, got %q", payload.Lang)
	}
}

func TestPublicAPI_LanguageUpdate(t *testing.T) {
	mux, _ := setupPublicAPI(t)

	doJSONRequest(t, mux, http.MethodPut, "/api/language", map[string]any{"lang": "en"}, http.StatusOK)
	doJSONRequest(t, mux, http.MethodPut, "/api/language", map[string]any{"lang": "de"}, http.StatusBadRequest)
}

func TestPublicAPI_ArticlesPublishedOnly(t *testing.T) {
	mux, services := setupPublicAPI(t)

	ctx := context.Background()
	if _, err := services.articles.Add(ctx, records.Record[records.ArticleLocale]{
		Status:    records.StatusPublished,
		SortIndex: 1,
		Content: records.LocalizedContent[records.ArticleLocale]{
			FR: records.ArticleLocale{Title: "Publié", Category: "Radio", ReadTime: "4 min", Date: "2026-01-10", Summary: "Un article publié sur la radio."},
			EN: records.ArticleLocale{Title: "Published", Category: "Radio", ReadTime: "4 min", Date: "2026-01-10", Summary: "A published article about radio."},
		},
	}); err != nil {
		t.Fatalf("seed published article: %v", err)
	}
	if _, err := services.articles.Add(ctx, records.Record[records.ArticleLocale]{
		Status:    records.StatusDraft,
		SortIndex: 0,
		Content: records.LocalizedContent[records.ArticleLocale]{
			FR: records.ArticleLocale{Title: "Brouillon", Category: "TV", ReadTime: "2 min", Date: "2026-02-01", Summary: "Un brouillon encore en cours."},
			EN: records.ArticleLocale{Title: "Draft", Category: "TV", ReadTime: "2 min", Date: "2026-02-01", Summary: "A draft still in progress."},
		},
	}); err != nil {
		t.Fatalf("seed draft article: %v", err)
	}

	resp := doJSONRequest(t, mux, http.MethodGet, "/api/articles", nil, http.StatusOK)
	var list []records.ArticleLocale
	decodeJSONBody(t, resp, &list)
	if len(list) != 1 {
		t.Fatalf("expected only the published article, got %d", len(list))
	}
	if list[0].Title != "Publié" {
		t.Fatalf("expected french title, got %q", list[0].Title)
	}
}

func TestPublicAPI_ContactSubmission(t *testing.T) {
	mux, services := setupPublicAPI(t)

	body := map[string]any{
		"fullName":    "Claire Dupont",
		"email":       "claire@example.org",
		"profile":     "journalist",
		"projectType": "interview",
		"message":     "Bonjour, je souhaite discuter d'une interview.",
		"consent":     true,
	}
	resp := doJSONRequest(t, mux, http.MethodPost, "/api/contact", body, http.StatusCreated)
	var stored messages.Message
	decodeJSONBody(t, resp, &stored)
	if stored.FullName != "Claire Dupont" {
		t.Fatalf("expected stored message, got %+v", stored)
	}
	if len(services.inbox.Items()) != 1 {
		t.Fatalf("expected one inbox message, got %d", len(services.inbox.Items()))
	}

	invalid := map[string]any{
		"fullName": "Claire Dupont",
		"email":    "not-an-email",
		"message":  "too short",
		"consent":  true,
	}
	errResp := doJSONRequest(t, mux, http.MethodPost, "/api/contact", invalid, http.StatusUnprocessableEntity)
	var failure errorResponse
	decodeJSONBody(t, errResp, &failure)
	if failure.Error != "validation_failed" {
		t.Fatalf("expected validation_failed, got %q", failure.Error)
	}
	if len(failure.Issues) == 0 {
		t.Fatalf("expected field issues in response")
	}
}

type publicServices struct {
	content  sitecontent.Store
	articles *records.Collection[records.ArticleLocale]
	projects *records.Collection[records.ProjectLocale]
	inbox    *messages.Inbox
}

func setupPublicAPI(t *testing.T) (*http.ServeMux, publicServices) {
	t.Helper()

	contentStore := sitecontent.NewStore(sitecontent.NewMemoryDocumentRepository())
	selector := i18n.NewSelector(state.NewMemoryStore())
	articles := records.NewCollection(records.NewMemoryRepository[records.ArticleLocale]("article"), "article")
	projects := records.NewCollection(records.NewMemoryRepository[records.ProjectLocale]("project"), "project")
	inbox := messages.NewInbox(messages.NewMemoryMessageRepository())

	api := NewPublicAPI(
		WithPublicContent(contentStore),
		WithPublicLanguages(selector),
		WithPublicArticles(articles),
		WithPublicProjects(projects),
		WithPublicInbox(inbox),
	)
	mux := http.NewServeMux()
	if err := api.Register(mux); err != nil {
		t.Fatalf("register api: %v", err)
	}
	return mux, publicServices{content: contentStore, articles: articles, projects: projects, inbox: inbox}
}

func doJSONRequest(t *testing.T, mux *http.ServeMux, method, path string, body any, wantStatus int) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != wantStatus {
		t.Fatalf("expected status %d got %d (%s)", wantStatus, rec.Code, rec.Body.String())
	}
	return rec
}

func decodeJSONBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
