package messages

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// MessageRepository abstracts storage for contact messages.
type MessageRepository interface {
	// List returns all messages, newest first.
	List(ctx context.Context) ([]Message, error)
	// Insert stores a new message, assigning its ID when zero.
	Insert(ctx context.Context, message Message) (Message, error)
}

// Row is the persisted form of one contact message.
type Row struct {
	bun.BaseModel `bun:"table:contact_messages,alias:cm"`

	ID          uuid.UUID `bun:",pk,type:uuid" json:"id"`
	FullName    string    `bun:"full_name,notnull" json:"full_name"`
	Email       string    `bun:"email,notnull" json:"email"`
	Phone       string    `bun:"phone" json:"phone"`
	Profile     string    `bun:"profile" json:"profile"`
	ProjectType string    `bun:"project_type" json:"project_type"`
	Message     string    `bun:"message,notnull" json:"message"`
	CreatedAt   time.Time `bun:"created_at,notnull" json:"created_at"`
}

func (r *Row) toMessage() Message {
	return Message{
		ID:          r.ID,
		FullName:    r.FullName,
		Email:       r.Email,
		Phone:       r.Phone,
		Profile:     r.Profile,
		ProjectType: r.ProjectType,
		Message:     r.Message,
		CreatedAt:   r.CreatedAt,
	}
}

// NewRowRepository builds the generic row repository for contact messages.
func NewRowRepository(db *bun.DB) repository.Repository[*Row] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Row]{
		NewRecord: func() *Row { return &Row{} },
		GetID: func(r *Row) uuid.UUID {
			return r.ID
		},
		SetID: func(r *Row, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(r *Row) string {
			if r == nil {
				return ""
			}
			return r.ID.String()
		},
	})
}

// BunMessageRepository implements MessageRepository over contact_messages.
type BunMessageRepository struct {
	repo repository.Repository[*Row]
}

func NewBunMessageRepository(db *bun.DB) *BunMessageRepository {
	return &BunMessageRepository{repo: NewRowRepository(db)}
}

func (r *BunMessageRepository) List(ctx context.Context) ([]Message, error) {
	rows, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.created_at DESC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("contact_messages repository error: %w", err)
	}

	out := make([]Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toMessage())
	}
	return out, nil
}

func (r *BunMessageRepository) Insert(ctx context.Context, message Message) (Message, error) {
	row := &Row{
		ID:          message.ID,
		FullName:    message.FullName,
		Email:       message.Email,
		Phone:       message.Phone,
		Profile:     message.Profile,
		ProjectType: message.ProjectType,
		Message:     message.Message,
		CreatedAt:   message.CreatedAt,
	}
	created, err := r.repo.Create(ctx, row)
	if err != nil {
		return Message{}, fmt.Errorf("contact_messages repository error: %w", err)
	}
	return created.toMessage(), nil
}

// MemoryMessageRepository is an in-memory implementation for scaffolding and tests.
type MemoryMessageRepository struct {
	mu    sync.RWMutex
	items []Message
}

// NewMemoryMessageRepository creates an empty in-memory message repository.
func NewMemoryMessageRepository() *MemoryMessageRepository {
	return &MemoryMessageRepository{}
}

func (m *MemoryMessageRepository) List(_ context.Context) ([]Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Message, len(m.items))
	copy(out, m.items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryMessageRepository) Insert(_ context.Context, message Message) (Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	m.items = append(m.items, message)
	return message, nil
}
