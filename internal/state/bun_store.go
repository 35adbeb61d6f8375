package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// Entry is the persisted form of one state value.
type Entry struct {
	bun.BaseModel `bun:"table:app_state,alias:st"`

	Key       string    `bun:"key,pk" json:"key"`
	Value     string    `bun:"value" json:"value"`
	UpdatedAt time.Time `bun:"updated_at,nullzero" json:"updated_at"`
}

// BunStore persists state entries in the app_state table.
type BunStore struct {
	db  *bun.DB
	now func() time.Time
}

func NewBunStore(db *bun.DB) *BunStore {
	return &BunStore{db: db, now: time.Now}
}

func (s *BunStore) Get(ctx context.Context, key string) (string, error) {
	entry := &Entry{}
	err := s.db.NewSelect().
		Model(entry).
		Where("st.key = ?", key).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", &NotFoundError{Key: key}
		}
		return "", fmt.Errorf("app_state repository error: %w", err)
	}
	return entry.Value, nil
}

func (s *BunStore) Set(ctx context.Context, key, value string) error {
	entry := &Entry{Key: key, Value: value, UpdatedAt: s.now().UTC()}
	_, err := s.db.NewInsert().
		Model(entry).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("app_state repository error: %w", err)
	}
	return nil
}

func (s *BunStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.NewDelete().
		Model((*Entry)(nil)).
		Where("key = ?", key).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("app_state repository error: %w", err)
	}
	return nil
}
