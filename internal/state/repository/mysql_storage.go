package repository

import (
	"database/sql"

	"github.com/allisson/passvault/internal/database"
)

// MySQLStorage persists state entries in MySQL.
//
// Schema (migrations/mysql):
//   - storage_key: VARCHAR(255) PRIMARY KEY
//   - value: LONGBLOB
//   - updated_at: TIMESTAMP(6)
type MySQLStorage struct {
	sqlStorage
}

// NewMySQLStorage creates a MySQLStorage.
func NewMySQLStorage(db *sql.DB) *MySQLStorage {
	return &MySQLStorage{sqlStorage{
		db:        db,
		txManager: database.NewTxManager(db),
		dialect: sqlDialect{
			name: "mysql",
			get:  `SELECT value FROM state_entries WHERE storage_key = ?`,
			upsert: `INSERT INTO state_entries (storage_key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP(6))
				ON DUPLICATE KEY UPDATE value = VALUES(value), updated_at = VALUES(updated_at)`,
			remove: `DELETE FROM state_entries WHERE storage_key = ?`,
		},
	}}
}
