// Package testsupport holds helpers shared by the repository and storage
// tests.
package testsupport

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// NewSQLiteMemoryDB opens an in-memory SQLite database for repository tests.
// The shared cache keeps the schema visible across pooled connections;
// callers should still cap the pool at one connection before concurrent use.
func NewSQLiteMemoryDB() (*sql.DB, error) {
	return sql.Open("sqlite3", "file::memory:?cache=shared")
}
