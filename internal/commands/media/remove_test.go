package mediacmd

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/carnelle/portfolio/internal/commands"
	"github.com/carnelle/portfolio/internal/logging"
	"github.com/carnelle/portfolio/internal/media"
	"github.com/carnelle/portfolio/pkg/interfaces"
	goerrors "github.com/goliatone/go-errors"
)

type stubBlobStorage struct {
	removed []string
}

func (s *stubBlobStorage) Put(_ context.Context, path string, r io.Reader, _ interfaces.BlobPutOptions) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	return "https://blobs.test/" + path, nil
}

func (s *stubBlobStorage) Remove(_ context.Context, path string) error {
	s.removed = append(s.removed, path)
	return nil
}

func TestRemoveMediaHandlerDeletesItem(t *testing.T) {
	blobs := &stubBlobStorage{}
	library := media.NewLibrary(media.NewMemoryItemRepository(), blobs)
	logger := commands.CommandLogger(nil, "media")
	handler := NewRemoveMediaHandler(library, logger)

	item, err := library.Upload(context.Background(), media.UploadRequest{
		FileName:    "affiche.png",
		ContentType: "image/png",
		Size:        64,
		Category:    media.CategoryEventPhoto,
		Body:        strings.NewReader("png bytes"),
	})
	if err != nil {
		t.Fatalf("upload fixture: %v", err)
	}

	if err := handler.Execute(context.Background(), RemoveMediaCommand{ID: item.ID}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(library.Items()) != 0 {
		t.Fatalf("expected empty library, got %d items", len(library.Items()))
	}
	if len(blobs.removed) != 1 || blobs.removed[0] != item.Path {
		t.Fatalf("expected blob %q removed, got %v", item.Path, blobs.removed)
	}
}

func TestRemoveMediaHandlerValidationError(t *testing.T) {
	blobs := &stubBlobStorage{}
	library := media.NewLibrary(media.NewMemoryItemRepository(), blobs)
	handler := NewRemoveMediaHandler(library, logging.NoOp())

	err := handler.Execute(context.Background(), RemoveMediaCommand{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}
