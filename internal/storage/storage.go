// Package storage opens the bun database used by the repositories and keeps
// the schema in place.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/carnelle/portfolio/internal/media"
	"github.com/carnelle/portfolio/internal/messages"
	"github.com/carnelle/portfolio/internal/records"
	"github.com/carnelle/portfolio/internal/runtimeconfig"
	"github.com/carnelle/portfolio/internal/sitecontent"
	"github.com/carnelle/portfolio/internal/state"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Open connects to the configured database and returns a bun handle.
func Open(cfg runtimeconfig.DatabaseConfig) (*bun.DB, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "sqlite":
		sqlDB, err := sql.Open("sqlite3", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("storage: open sqlite: %w", err)
		}
		db := bun.NewDB(sqlDB, sqlitedialect.New())
		db.SetMaxOpenConns(1)
		return db, nil
	case "postgres":
		sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN)))
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	default:
		return nil, fmt.Errorf("%w: %s", runtimeconfig.ErrDatabaseDriverUnknown, cfg.Driver)
	}
}

// EnsureSchema creates the service tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*sitecontent.Document)(nil),
		(*state.Entry)(nil),
		(*records.Article)(nil),
		(*records.Project)(nil),
		(*media.Row)(nil),
		(*messages.Row)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("storage: create table %T: %w", model, err)
		}
	}
	return nil
}
