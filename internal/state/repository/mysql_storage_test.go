package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/passvault/internal/testutil"
)

func TestMySQLStorage_Get(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT value FROM state_entries WHERE storage_key = ?`)

	t.Run("Success_Found", func(t *testing.T) {
		db, mock := newMockDB(t)
		storage := NewMySQLStorage(db)

		mock.ExpectQuery(query).
			WithArgs("global_theme").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("dark")))

		got, found, err := storage.Get(ctx, "global_theme")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("dark"), got)
	})

	t.Run("Success_NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		storage := NewMySQLStorage(db)

		mock.ExpectQuery(query).WithArgs("missing").WillReturnError(sql.ErrNoRows)

		_, found, err := storage.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Error_QueryFails", func(t *testing.T) {
		db, mock := newMockDB(t)
		storage := NewMySQLStorage(db)

		mock.ExpectQuery(query).WithArgs("k").WillReturnError(assert.AnError)

		_, _, err := storage.Get(ctx, "k")
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "mysql")
	})
}

func TestMySQLStorage_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Upsert", func(t *testing.T) {
		db, mock := newMockDB(t)
		storage := NewMySQLStorage(db)

		mock.ExpectExec(`INSERT INTO state_entries .* ON DUPLICATE KEY UPDATE`).
			WithArgs("global_theme", []byte("light")).
			WillReturnResult(sqlmock.NewResult(0, 2))

		require.NoError(t, storage.Save(ctx, "global_theme", []byte("light")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMySQLStorage_Remove(t *testing.T) {
	ctx := context.Background()
	remove := regexp.QuoteMeta(`DELETE FROM state_entries WHERE storage_key = ?`)

	t.Run("Success_SingleTransaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		storage := NewMySQLStorage(db)

		mock.ExpectBegin()
		mock.ExpectExec(remove).WithArgs("a").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, storage.Remove(ctx, "a"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_BeginFails", func(t *testing.T) {
		db, mock := newMockDB(t)
		storage := NewMySQLStorage(db)

		mock.ExpectBegin().WillReturnError(assert.AnError)

		err := storage.Remove(ctx, "a")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestMySQLStorage_Integration(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	ctx := context.Background()
	storage := NewMySQLStorage(db)

	require.NoError(t, storage.Save(ctx, "user-1_profile", []byte("v1")))
	require.NoError(t, storage.Save(ctx, "user-1_profile", []byte("v2")))

	got, found, err := storage.Get(ctx, "user-1_profile")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v2"), got)

	require.NoError(t, storage.Remove(ctx, "user-1_profile"))
	_, found, err = storage.Get(ctx, "user-1_profile")
	require.NoError(t, err)
	assert.False(t, found)
}
