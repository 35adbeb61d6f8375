package records

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunArticleRepository implements Repository[ArticleLocale] over the
// articles table.
type BunArticleRepository struct {
	repo repository.Repository[*Article]
}

func NewBunArticleRepository(db *bun.DB) *BunArticleRepository {
	return NewBunArticleRepositoryWithCache(db, nil, nil)
}

func NewBunArticleRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunArticleRepository {
	base := NewArticleRowRepository(db)
	return &BunArticleRepository{repo: wrapWithCache(base, cacheService, keySerializer)}
}

func (r *BunArticleRepository) List(ctx context.Context) ([]Record[ArticleLocale], error) {
	rows, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.sort_index ASC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("article repository error: %w", err)
	}

	out := make([]Record[ArticleLocale], 0, len(rows))
	for _, row := range rows {
		record, err := decodeRow[ArticleLocale](row.ID, row.Status, row.SortIndex, row.Content, "article")
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

func (r *BunArticleRepository) Insert(ctx context.Context, record Record[ArticleLocale]) (Record[ArticleLocale], error) {
	content, err := json.Marshal(record.Content)
	if err != nil {
		return Record[ArticleLocale]{}, fmt.Errorf("article repository error: %w", err)
	}

	created, err := r.repo.Create(ctx, &Article{
		ID:        record.ID,
		Status:    string(record.Status),
		SortIndex: record.SortIndex,
		Content:   content,
	})
	if err != nil {
		return Record[ArticleLocale]{}, fmt.Errorf("article repository error: %w", err)
	}

	record.ID = created.ID
	return record, nil
}

func (r *BunArticleRepository) Update(ctx context.Context, record Record[ArticleLocale]) error {
	content, err := json.Marshal(record.Content)
	if err != nil {
		return fmt.Errorf("article repository error: %w", err)
	}

	_, err = r.repo.Update(ctx, &Article{
		ID:        record.ID,
		Status:    string(record.Status),
		SortIndex: record.SortIndex,
		Content:   content,
	})
	return mapRepositoryError(err, "article", record.ID.String())
}

func (r *BunArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.repo.Delete(ctx, &Article{ID: id})
	return mapRepositoryError(err, "article", id.String())
}

// BunProjectRepository implements Repository[ProjectLocale] over the
// projects table.
type BunProjectRepository struct {
	repo repository.Repository[*Project]
}

func NewBunProjectRepository(db *bun.DB) *BunProjectRepository {
	return NewBunProjectRepositoryWithCache(db, nil, nil)
}

func NewBunProjectRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunProjectRepository {
	base := NewProjectRowRepository(db)
	return &BunProjectRepository{repo: wrapWithCache(base, cacheService, keySerializer)}
}

func (r *BunProjectRepository) List(ctx context.Context) ([]Record[ProjectLocale], error) {
	rows, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.sort_index ASC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("project repository error: %w", err)
	}

	out := make([]Record[ProjectLocale], 0, len(rows))
	for _, row := range rows {
		record, err := decodeRow[ProjectLocale](row.ID, row.Status, row.SortIndex, row.Content, "project")
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

func (r *BunProjectRepository) Insert(ctx context.Context, record Record[ProjectLocale]) (Record[ProjectLocale], error) {
	content, err := json.Marshal(record.Content)
	if err != nil {
		return Record[ProjectLocale]{}, fmt.Errorf("project repository error: %w", err)
	}

	created, err := r.repo.Create(ctx, &Project{
		ID:        record.ID,
		Status:    string(record.Status),
		SortIndex: record.SortIndex,
		Content:   content,
	})
	if err != nil {
		return Record[ProjectLocale]{}, fmt.Errorf("project repository error: %w", err)
	}

	record.ID = created.ID
	return record, nil
}

func (r *BunProjectRepository) Update(ctx context.Context, record Record[ProjectLocale]) error {
	content, err := json.Marshal(record.Content)
	if err != nil {
		return fmt.Errorf("project repository error: %w", err)
	}

	_, err = r.repo.Update(ctx, &Project{
		ID:        record.ID,
		Status:    string(record.Status),
		SortIndex: record.SortIndex,
		Content:   content,
	})
	return mapRepositoryError(err, "project", record.ID.String())
}

func (r *BunProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.repo.Delete(ctx, &Project{ID: id})
	return mapRepositoryError(err, "project", id.String())
}

func decodeRow[L any](id uuid.UUID, status string, sortIndex int, raw json.RawMessage, resource string) (Record[L], error) {
	record := Record[L]{
		ID:        id,
		Status:    Status(status),
		SortIndex: sortIndex,
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &record.Content); err != nil {
			return record, fmt.Errorf("%s repository error: decode content %s: %w", resource, id, err)
		}
	}
	return record, nil
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
