package portfolio_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	portfolio "github.com/carnelle/portfolio"
	"github.com/carnelle/portfolio/internal/records"
	"github.com/carnelle/portfolio/internal/sitecontent"
)

func newTestModule(t *testing.T) *portfolio.Module {
	t.Helper()

	cfg := portfolio.DefaultConfig()
	cfg.Database.DSN = "file::memory:?cache=shared"
	cfg.Blobs.Dir = t.TempDir()
	cfg.Admin.Token = "integration-token"
	cfg.Cache.Enabled = false

	module, err := portfolio.New(cfg)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	t.Cleanup(func() { _ = module.Close() })

	if err := module.Load(context.Background()); err != nil {
		t.Fatalf("load module: %v", err)
	}
	return module
}

func TestModule_ServesDefaultContent(t *testing.T) {
	module := newTestModule(t)

	mux := http.NewServeMux()
	if err := module.Mount(mux); err != nil {
		t.Fatalf("mount: %v", err)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var payload struct {
		Lang    string                  `json:"lang"`
		Content sitecontent.SiteContent `json:"content"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode content: %v", err)
	}
	if payload.Lang != "fr" {
		t.Fatalf("expected default lang fr, got %q", payload.Lang)
	}
	if payload.Content.Header.BrandTitle != "Carnelle Nguepi" {
		t.Fatalf("expected default brand title, got %q", payload.Content.Header.BrandTitle)
	}
}

func TestModule_ConfiguredDefaultLanguage(t *testing.T) {
	cfg := portfolio.DefaultConfig()
	cfg.Database.DSN = "file::memory:?cache=shared"
	cfg.Blobs.Dir = t.TempDir()
	cfg.Cache.Enabled = false
	cfg.Content.DefaultLanguage = "en"

	module, err := portfolio.New(cfg)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	t.Cleanup(func() { _ = module.Close() })

	ctx := context.Background()
	if err := module.Load(ctx); err != nil {
		t.Fatalf("load module: %v", err)
	}

	if got := module.Languages().Current(ctx); got != sitecontent.LanguageEN {
		t.Fatalf("expected configured default language en, got %q", got)
	}

	mux := http.NewServeMux()
	if err := module.Mount(mux); err != nil {
		t.Fatalf("mount: %v", err)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var payload struct {
		Lang string `json:"lang"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode content: %v", err)
	}
	if payload.Lang != "en" {
		t.Fatalf("expected content served in en, got %q", payload.Lang)
	}
}

func TestModule_EditSaveSurvivesReload(t *testing.T) {
	module := newTestModule(t)

	ctx := context.Background()
	ed := module.Editor()
	if err := ed.Open(ctx, sitecontent.LanguageFR); err != nil {
		t.Fatalf("open editor: %v", err)
	}
	if err := ed.Set(ctx, "header.brandTitle", "STUDIO NGUEPI"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if err := ed.Save(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}

	// A second module over the same database sees the saved document.
	reloaded := newTestModuleSharingDB(t, module)
	got := reloaded.Content().Language(sitecontent.LanguageFR).Header.BrandTitle
	if got != "STUDIO NGUEPI" {
		t.Fatalf("expected persisted brand title after reload, got %q", got)
	}
}

func TestModule_ArticleRoundTrip(t *testing.T) {
	module := newTestModule(t)

	ctx := context.Background()
	created, err := module.Articles().Add(ctx, records.Record[records.ArticleLocale]{
		Status:    records.StatusPublished,
		SortIndex: 0,
		Content: records.LocalizedContent[records.ArticleLocale]{
			FR: records.ArticleLocale{Title: "Chronique", Category: "Radio", ReadTime: "3 min", Date: "2026-04-01", Summary: "Une chronique hebdomadaire."},
			EN: records.ArticleLocale{Title: "Column", Category: "Radio", ReadTime: "3 min", Date: "2026-04-01", Summary: "A weekly radio column."},
		},
	})
	if err != nil {
		t.Fatalf("add article: %v", err)
	}

	mux := http.NewServeMux()
	if err := module.Mount(mux); err != nil {
		t.Fatalf("mount: %v", err)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var list []records.ArticleLocale
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode articles: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Chronique" {
		t.Fatalf("expected the published article, got %+v", list)
	}

	// Admin update through HTTP.
	created.Content.FR.Title = "Chronique mise à jour"
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(created); err != nil {
		t.Fatalf("encode update: %v", err)
	}
	req := httptest.NewRequest(http.MethodPut, "/admin/api/articles/"+created.ID.String(), &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer integration-token")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on update, got %d (%s)", rec.Code, rec.Body.String())
	}

	updated, ok := module.Articles().Get(created.ID)
	if !ok || updated.Content.FR.Title != "Chronique mise à jour" {
		t.Fatalf("expected updated article, got %+v", updated)
	}
}

func newTestModuleSharingDB(t *testing.T, source *portfolio.Module) *portfolio.Module {
	t.Helper()

	cfg := portfolio.DefaultConfig()
	cfg.Blobs.Dir = t.TempDir()
	cfg.Cache.Enabled = false

	module, err := portfolio.New(cfg, portfolio.WithDB(source.DB()))
	if err != nil {
		t.Fatalf("new module over shared db: %v", err)
	}
	if err := module.Load(context.Background()); err != nil {
		t.Fatalf("load shared module: %v", err)
	}
	return module
}
