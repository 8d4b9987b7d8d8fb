package repository

import (
	"database/sql"

	"github.com/allisson/passvault/internal/database"
)

// PostgreSQLStorage persists state entries in PostgreSQL.
//
// Schema (migrations/postgresql):
//   - storage_key: VARCHAR(255) PRIMARY KEY
//   - value: BYTEA
//   - updated_at: TIMESTAMP WITH TIME ZONE
type PostgreSQLStorage struct {
	sqlStorage
}

// NewPostgreSQLStorage creates a PostgreSQLStorage.
func NewPostgreSQLStorage(db *sql.DB) *PostgreSQLStorage {
	return &PostgreSQLStorage{sqlStorage{
		db:        db,
		txManager: database.NewTxManager(db),
		dialect: sqlDialect{
			name: "postgresql",
			get:  `SELECT value FROM state_entries WHERE storage_key = $1`,
			upsert: `INSERT INTO state_entries (storage_key, value, updated_at) VALUES ($1, $2, NOW())
				ON CONFLICT (storage_key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
			remove: `DELETE FROM state_entries WHERE storage_key = $1`,
		},
	}}
}
