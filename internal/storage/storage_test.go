package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/carnelle/portfolio/internal/runtimeconfig"
	"github.com/carnelle/portfolio/internal/sitecontent"
	"github.com/carnelle/portfolio/internal/storage"
)

func TestOpenSQLiteAndEnsureSchema(t *testing.T) {
	ctx := context.Background()

	db, err := storage.Open(runtimeconfig.DatabaseConfig{Driver: "sqlite", DSN: "file::memory:?cache=shared"})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := storage.EnsureSchema(ctx, db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	// Second run must be a no-op.
	if err := storage.EnsureSchema(ctx, db); err != nil {
		t.Fatalf("ensure schema twice: %v", err)
	}

	repo := sitecontent.NewBunDocumentRepository(db)
	doc, err := sitecontent.EncodeDocument(sitecontent.DocumentKey, sitecontent.MustDefaultContent(), time.Now().UTC())
	if err != nil {
		t.Fatalf("encode document: %v", err)
	}
	if err := repo.Put(ctx, doc); err != nil {
		t.Fatalf("put document: %v", err)
	}
	stored, err := repo.Get(ctx, sitecontent.DocumentKey)
	if err != nil {
		t.Fatalf("get document: %v", err)
	}
	decoded, err := stored.Decode()
	if err != nil {
		t.Fatalf("decode document: %v", err)
	}
	if decoded.FR.Header.BrandTitle == "" {
		t.Fatal("expected decoded document to carry content")
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := storage.Open(runtimeconfig.DatabaseConfig{Driver: "oracle", DSN: "x"}); err == nil {
		t.Fatal("expected unknown driver error")
	}
}
