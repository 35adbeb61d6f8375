package state

import (
	"context"
	"fmt"
)

// Well-known keys.
const (
	// KeyLanguage stores the visitor-facing language preference.
	KeyLanguage = "carnelle-language"
	// KeyPreview stores the serialized preview overlay document.
	KeyPreview = "site_content_preview"
)

// Store is a small string key/value store for application state that must
// survive restarts but does not belong in a domain table: language
// preference, preview overlay, and similar knobs.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// NotFoundError indicates a key with no stored value.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("state %q not found", e.Key)
}
