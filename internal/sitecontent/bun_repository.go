package sitecontent

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// BunDocumentRepository stores the site document in the site_content table.
// The single-row, upsert-by-key access pattern does not fit the generic
// uuid-keyed repository helpers, so it talks to bun directly.
type BunDocumentRepository struct {
	db *bun.DB
}

func NewBunDocumentRepository(db *bun.DB) *BunDocumentRepository {
	return &BunDocumentRepository{db: db}
}

func (r *BunDocumentRepository) Get(ctx context.Context, key string) (*Document, error) {
	doc := &Document{}
	err := r.db.NewSelect().
		Model(doc).
		Where("sc.key = ?", key).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Resource: "site_content", Key: key}
		}
		return nil, fmt.Errorf("site_content repository error: %w", err)
	}
	return doc, nil
}

func (r *BunDocumentRepository) Put(ctx context.Context, doc *Document) error {
	_, err := r.db.NewInsert().
		Model(doc).
		On("CONFLICT (key) DO UPDATE").
		Set("content = EXCLUDED.content").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("site_content repository error: %w", err)
	}
	return nil
}
