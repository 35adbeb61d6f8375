package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/carnelle/portfolio/pkg/interfaces"
)

// FileBlobStorage keeps uploaded blobs on the local filesystem under a root
// directory and serves them under a URL prefix.
type FileBlobStorage struct {
	root    string
	baseURL string
}

// NewFileBlobStorage builds a filesystem-backed blob store rooted at dir.
func NewFileBlobStorage(dir, baseURL string) (*FileBlobStorage, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("storage: blob directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create blob directory: %w", err)
	}
	return &FileBlobStorage{
		root:    dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Put writes the blob to disk and returns its public URL.
func (s *FileBlobStorage) Put(_ context.Context, path string, r io.Reader, opts interfaces.BlobPutOptions) (string, error) {
	target, err := s.resolve(path)
	if err != nil {
		return "", err
	}
	if !opts.Upsert {
		if _, err := os.Stat(target); err == nil {
			return "", fmt.Errorf("storage: blob %s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("storage: create blob path: %w", err)
	}

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("storage: create blob: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(target)
		return "", fmt.Errorf("storage: write blob: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("storage: close blob: %w", err)
	}
	return s.baseURL + "/" + path, nil
}

// Remove deletes the blob at path. A missing blob is not an error.
func (s *FileBlobStorage) Remove(_ context.Context, path string) error {
	target, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove blob: %w", err)
	}
	return nil
}

// resolve keeps blob paths inside the root directory.
func (s *FileBlobStorage) resolve(path string) (string, error) {
	clean := filepath.Clean("/" + path)
	if clean == "/" {
		return "", errors.New("storage: blob path is required")
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}

var _ interfaces.BlobStorage = (*FileBlobStorage)(nil)
