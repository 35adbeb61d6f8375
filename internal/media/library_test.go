package media

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/carnelle/portfolio/pkg/interfaces"
)

type memoryBlobStorage struct {
	mu      sync.Mutex
	blobs   map[string][]byte
	removed []string
	putErr  error
	rmErr   error
}

func newMemoryBlobStorage() *memoryBlobStorage {
	return &memoryBlobStorage{blobs: map[string][]byte{}}
}

func (m *memoryBlobStorage) Put(_ context.Context, path string, r io.Reader, _ interfaces.BlobPutOptions) (string, error) {
	if m.putErr != nil {
		return "", m.putErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	m.blobs[path] = data
	m.mu.Unlock()
	return "https://blobs.example/" + path, nil
}

func (m *memoryBlobStorage) Remove(_ context.Context, path string) error {
	if m.rmErr != nil {
		return m.rmErr
	}
	m.mu.Lock()
	delete(m.blobs, path)
	m.removed = append(m.removed, path)
	m.mu.Unlock()
	return nil
}

func uploadRequest(name, contentType string, size int64) UploadRequest {
	return UploadRequest{
		FileName:    name,
		ContentType: contentType,
		Size:        size,
		Title:       "",
		Category:    CategoryPressPhoto,
		Body:        bytes.NewReader([]byte("payload")),
	}
}

func TestLibraryUploadStoresBlobAndRecord(t *testing.T) {
	blobs := newMemoryBlobStorage()
	lib := NewLibrary(NewMemoryItemRepository(), blobs,
		WithLibraryClock(func() time.Time { return time.Unix(1700000000, 0) }),
	)
	ctx := context.Background()

	item, err := lib.Upload(ctx, uploadRequest("portrait studio.png", "image/png", 1024))
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	if item.Title != "portrait studio.png" {
		t.Fatalf("empty title should fall back to file name, got %q", item.Title)
	}
	if item.Type != TypeImage {
		t.Fatalf("expected image type, got %q", item.Type)
	}
	if !strings.HasPrefix(item.URL, "https://blobs.example/media/") {
		t.Fatalf("unexpected url %q", item.URL)
	}
	if strings.Contains(item.Path, " ") {
		t.Fatalf("blob path should be sanitized, got %q", item.Path)
	}
	if len(blobs.blobs) != 1 {
		t.Fatalf("expected one stored blob, got %d", len(blobs.blobs))
	}
	if got := lib.Items(); len(got) != 1 || got[0].ID != item.ID {
		t.Fatalf("expected uploaded item in library, got %v", got)
	}
}

func TestLibraryUploadValidation(t *testing.T) {
	lib := NewLibrary(NewMemoryItemRepository(), newMemoryBlobStorage())
	ctx := context.Background()

	if _, err := lib.Upload(ctx, uploadRequest("script.exe", "application/x-msdownload", 10)); !errors.Is(err, ErrTypeNotAllowed) {
		t.Fatalf("expected ErrTypeNotAllowed, got %v", err)
	}

	if _, err := lib.Upload(ctx, uploadRequest("huge.mp4", "video/mp4", MaxUploadSize+1)); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}

	req := uploadRequest("photo.png", "image/png", 10)
	req.Category = Category("vault")
	if _, err := lib.Upload(ctx, req); !errors.Is(err, ErrCategoryInvalid) {
		t.Fatalf("expected ErrCategoryInvalid, got %v", err)
	}
}

func TestLibraryRemoveDeletesBlobThenRecord(t *testing.T) {
	blobs := newMemoryBlobStorage()
	lib := NewLibrary(NewMemoryItemRepository(), blobs)
	ctx := context.Background()

	item, err := lib.Upload(ctx, uploadRequest("photo.png", "image/png", 10))
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	if err := lib.Remove(ctx, item.ID); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if len(blobs.removed) != 1 || blobs.removed[0] != item.Path {
		t.Fatalf("expected blob %q removed, got %v", item.Path, blobs.removed)
	}
	if got := lib.Items(); len(got) != 0 {
		t.Fatalf("expected empty library, got %d items", len(got))
	}
}

func TestLibraryRemoveToleratesBlobFailure(t *testing.T) {
	blobs := newMemoryBlobStorage()
	lib := NewLibrary(NewMemoryItemRepository(), blobs)
	ctx := context.Background()

	item, err := lib.Upload(ctx, uploadRequest("photo.png", "image/png", 10))
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	blobs.rmErr = errors.New("bucket offline")
	if err := lib.Remove(ctx, item.ID); err != nil {
		t.Fatalf("record removal should survive a blob failure, got: %v", err)
	}
	if got := lib.Items(); len(got) != 0 {
		t.Fatalf("expected item gone, got %d", len(got))
	}
}

func TestLibraryFilters(t *testing.T) {
	lib := NewLibrary(NewMemoryItemRepository(), newMemoryBlobStorage())
	ctx := context.Background()

	req := uploadRequest("photo.png", "image/png", 10)
	req.Category = CategoryPressPhoto
	if _, err := lib.Upload(ctx, req); err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	req = uploadRequest("reel.mp4", "video/mp4", 10)
	req.Category = CategoryShowreel
	if _, err := lib.Upload(ctx, req); err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	if got := lib.ByCategory(CategoryShowreel); len(got) != 1 || got[0].Name != "reel.mp4" {
		t.Fatalf("unexpected showreel filter result: %v", got)
	}
	if got := lib.ByType(TypeImage); len(got) != 1 || got[0].Name != "photo.png" {
		t.Fatalf("unexpected image filter result: %v", got)
	}
}

func TestLibraryRefreshOrdersNewestFirst(t *testing.T) {
	repo := NewMemoryItemRepository()
	ctx := context.Background()

	older := Item{Name: "ancien.png", Type: TypeImage, Category: CategoryOther, UploadedAt: time.Unix(1000, 0)}
	newer := Item{Name: "recent.png", Type: TypeImage, Category: CategoryOther, UploadedAt: time.Unix(2000, 0)}
	if _, err := repo.Insert(ctx, older); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if _, err := repo.Insert(ctx, newer); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	lib := NewLibrary(repo, newMemoryBlobStorage())
	if err := lib.Refresh(ctx); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	items := lib.Items()
	if len(items) != 2 || items[0].Name != "recent.png" {
		t.Fatalf("expected newest first, got %v", items)
	}
}
