package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/allisson/passvault/internal/database"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS state_entries (
	storage_key TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLiteStorage persists state entries in a local SQLite file, the default
// disk backend of a desktop client. The schema is created on open; no
// migration tooling is needed.
type SQLiteStorage struct {
	sqlStorage
}

// NewSQLiteStorage creates a SQLiteStorage and ensures its schema exists.
func NewSQLiteStorage(ctx context.Context, db *sql.DB) (*SQLiteStorage, error) {
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, fmt.Errorf("sqlite: failed to initialize schema: %w", err)
	}

	return &SQLiteStorage{sqlStorage{
		db:        db,
		txManager: database.NewTxManager(db),
		dialect: sqlDialect{
			name: "sqlite",
			get:  `SELECT value FROM state_entries WHERE storage_key = ?`,
			upsert: `INSERT INTO state_entries (storage_key, value, updated_at) VALUES (?, ?, unixepoch())
				ON CONFLICT (storage_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			remove: `DELETE FROM state_entries WHERE storage_key = ?`,
		},
	}}, nil
}
