package records

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository abstracts storage for one ordered bilingual collection.
type Repository[L any] interface {
	// List returns all records ordered by sort index ascending.
	List(ctx context.Context) ([]Record[L], error)
	// Insert stores a new record, assigning its ID when zero.
	Insert(ctx context.Context, record Record[L]) (Record[L], error)
	// Update replaces an existing record.
	Update(ctx context.Context, record Record[L]) error
	// Delete removes a record by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

// NewArticleRowRepository builds the generic row repository for articles.
func NewArticleRowRepository(db *bun.DB) repository.Repository[*Article] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Article]{
		NewRecord: func() *Article { return &Article{} },
		GetID: func(a *Article) uuid.UUID {
			return a.ID
		},
		SetID: func(a *Article, id uuid.UUID) {
			a.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(a *Article) string {
			if a == nil {
				return ""
			}
			return a.ID.String()
		},
	})
}

// NewProjectRowRepository builds the generic row repository for projects.
func NewProjectRowRepository(db *bun.DB) repository.Repository[*Project] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Project]{
		NewRecord: func() *Project { return &Project{} },
		GetID: func(p *Project) uuid.UUID {
			return p.ID
		},
		SetID: func(p *Project, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(p *Project) string {
			if p == nil {
				return ""
			}
			return p.ID.String()
		},
	})
}
