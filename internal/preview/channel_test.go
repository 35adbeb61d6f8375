package preview

import (
	"context"
	"testing"

	"github.com/carnelle/portfolio/internal/sitecontent"
	"github.com/carnelle/portfolio/internal/state"
)

func newFixture() (Channel, state.Store, sitecontent.Store) {
	stateStore := state.NewMemoryStore()
	contentStore := sitecontent.NewStore(sitecontent.NewMemoryDocumentRepository())
	return NewChannel(stateStore, contentStore), stateStore, contentStore
}

func draftDocument(title string) sitecontent.LocalizedSiteContent {
	doc := sitecontent.MustDefaultContent()
	fr := doc.FR
	fr.Header.BrandTitle = title
	return doc.WithLanguage(sitecontent.LanguageFR, fr)
}

func TestChannelPublishOverlaysAndPersists(t *testing.T) {
	ch, stateStore, contentStore := newFixture()
	ctx := context.Background()

	if err := ch.Publish(ctx, draftDocument("Brouillon")); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}

	if !contentStore.PreviewActive() {
		t.Fatal("expected preview overlay to be active")
	}
	if got := contentStore.Language(sitecontent.LanguageFR).Header.BrandTitle; got != "Brouillon" {
		t.Fatalf("expected overlay content to be served, got %q", got)
	}
	if _, err := stateStore.Get(ctx, state.KeyPreview); err != nil {
		t.Fatalf("expected persisted draft, got: %v", err)
	}
}

func TestChannelClearRemovesOverlayAndDraft(t *testing.T) {
	ch, stateStore, contentStore := newFixture()
	ctx := context.Background()

	if err := ch.Publish(ctx, draftDocument("Brouillon")); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if err := ch.Clear(ctx); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}

	if contentStore.PreviewActive() {
		t.Fatal("expected overlay to be cleared")
	}
	if _, err := stateStore.Get(ctx, state.KeyPreview); err == nil {
		t.Fatal("expected persisted draft to be deleted")
	}
}

func TestChannelSnapshotAbsentAndMalformed(t *testing.T) {
	ch, stateStore, _ := newFixture()
	ctx := context.Background()

	doc, err := ch.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}
	if doc != nil {
		t.Fatal("expected no snapshot when nothing is stored")
	}

	if err := stateStore.Set(ctx, state.KeyPreview, "{broken"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	doc, err = ch.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot should tolerate a malformed draft, got: %v", err)
	}
	if doc != nil {
		t.Fatal("malformed draft should be treated as absent")
	}
}

func TestChannelRestoreReappliesPersistedDraft(t *testing.T) {
	stateStore := state.NewMemoryStore()
	ctx := context.Background()

	seed := NewChannel(stateStore, sitecontent.NewStore(sitecontent.NewMemoryDocumentRepository()))
	if err := seed.Publish(ctx, draftDocument("Après redémarrage")); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}

	// fresh content store, same state store: simulates a restart
	contentStore := sitecontent.NewStore(sitecontent.NewMemoryDocumentRepository())
	ch := NewChannel(stateStore, contentStore)
	if err := ch.Restore(ctx); err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}

	if !contentStore.PreviewActive() {
		t.Fatal("expected overlay after restore")
	}
	if got := contentStore.Language(sitecontent.LanguageFR).Header.BrandTitle; got != "Après redémarrage" {
		t.Fatalf("expected restored draft content, got %q", got)
	}
}
