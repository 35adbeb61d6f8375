package interfaces

import (
	"context"
	"io"
)

// BlobPutOptions configures a blob upload.
type BlobPutOptions struct {
	ContentType string
	Upsert      bool
}

// BlobStorage is the external object store holding uploaded media files. The
// service only keeps the returned public URL; signing, buckets, and retention
// are the provider's concern.
type BlobStorage interface {
	// Put stores the blob under path and returns its public URL.
	Put(ctx context.Context, path string, r io.Reader, opts BlobPutOptions) (string, error)
	// Remove deletes the blob at path. Removing a missing blob is not an error.
	Remove(ctx context.Context, path string) error
}
