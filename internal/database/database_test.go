package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConnect_Error(t *testing.T) {
	cfg := Config{
		Driver:             "invalid",
		ConnectionString:   "invalid",
		MaxOpenConnections: 10,
		MaxIdleConnections: 5,
		ConnMaxLifetime:    time.Hour,
	}

	db, err := Connect(cfg)
	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "sql: unknown driver")
}

func TestConnect_SQLite(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", ConnectionString: ":memory:"})
	assert.NoError(t, err)
	defer func() {
		assert.NoError(t, db.Close())
	}()

	var timeout int
	err = db.QueryRow("PRAGMA busy_timeout").Scan(&timeout)
	assert.NoError(t, err)
	assert.Equal(t, 5000, timeout)
	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
}
