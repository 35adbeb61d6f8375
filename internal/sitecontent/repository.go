package sitecontent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// DocumentKey identifies the single bilingual document every deployment
// stores. The table is keyed so additional documents stay possible, but the
// service only ever reads and writes this one.
const DocumentKey = "default"

// Document is the persisted form of a LocalizedSiteContent tree: the whole
// bilingual payload serialized into one row.
type Document struct {
	bun.BaseModel `bun:"table:site_content,alias:sc"`

	Key       string          `bun:"key,pk" json:"key"`
	Content   json.RawMessage `bun:"content,type:jsonb" json:"content"`
	UpdatedAt time.Time       `bun:"updated_at,nullzero" json:"updated_at"`
}

// Decode unmarshals the stored payload into a typed document.
func (d *Document) Decode() (LocalizedSiteContent, error) {
	var doc LocalizedSiteContent
	if d == nil || len(d.Content) == 0 {
		return doc, fmt.Errorf("sitecontent: empty document payload")
	}
	if err := json.Unmarshal(d.Content, &doc); err != nil {
		return doc, fmt.Errorf("sitecontent: decode document: %w", err)
	}
	return doc, nil
}

// EncodeDocument serializes a typed document into its persisted form.
func EncodeDocument(key string, doc LocalizedSiteContent, updatedAt time.Time) (*Document, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("sitecontent: encode document: %w", err)
	}
	return &Document{Key: key, Content: raw, UpdatedAt: updatedAt}, nil
}

// DocumentRepository persists the bilingual site document.
type DocumentRepository interface {
	Get(ctx context.Context, key string) (*Document, error)
	Put(ctx context.Context, doc *Document) error
}

// NotFoundError indicates a missing document row.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err is a repository NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
