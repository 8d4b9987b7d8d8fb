package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/passvault/internal/database"
	"github.com/allisson/passvault/internal/testutil"
)

func newSQLiteStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	storage, err := NewSQLiteStorage(context.Background(), testutil.SetupSQLiteDB(t))
	require.NoError(t, err)
	return storage
}

func TestNewSQLiteStorage(t *testing.T) {
	db := testutil.SetupSQLiteDB(t)

	first, err := NewSQLiteStorage(context.Background(), db)
	require.NoError(t, err)
	assert.NotNil(t, first)

	// Schema creation is idempotent.
	second, err := NewSQLiteStorage(context.Background(), db)
	require.NoError(t, err)
	assert.NotNil(t, second)
}

func TestSQLiteStorage_SaveAndGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Insert", func(t *testing.T) {
		storage := newSQLiteStorage(t)

		require.NoError(t, storage.Save(ctx, "user-1_profile", []byte("profile-v1")))

		got, found, err := storage.Get(ctx, "user-1_profile")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("profile-v1"), got)
	})

	t.Run("Success_Upsert", func(t *testing.T) {
		storage := newSQLiteStorage(t)

		require.NoError(t, storage.Save(ctx, "user-1_profile", []byte("profile-v1")))
		require.NoError(t, storage.Save(ctx, "user-1_profile", []byte("profile-v2")))

		got, found, err := storage.Get(ctx, "user-1_profile")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("profile-v2"), got)
	})

	t.Run("Success_NotFound", func(t *testing.T) {
		storage := newSQLiteStorage(t)

		got, found, err := storage.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, got)
	})
}

func TestSQLiteStorage_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RemovesAllKeys", func(t *testing.T) {
		storage := newSQLiteStorage(t)
		require.NoError(t, storage.Save(ctx, "a", []byte("1")))
		require.NoError(t, storage.Save(ctx, "b", []byte("2")))
		require.NoError(t, storage.Save(ctx, "c", []byte("3")))

		require.NoError(t, storage.Remove(ctx, "a", "b"))

		_, found, err := storage.Get(ctx, "a")
		require.NoError(t, err)
		assert.False(t, found)
		_, found, err = storage.Get(ctx, "c")
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("Success_NoKeys", func(t *testing.T) {
		storage := newSQLiteStorage(t)
		assert.NoError(t, storage.Remove(ctx))
	})

	t.Run("Success_JoinsOuterTransaction", func(t *testing.T) {
		db := testutil.SetupSQLiteDB(t)
		storage, err := NewSQLiteStorage(ctx, db)
		require.NoError(t, err)
		require.NoError(t, storage.Save(ctx, "a", []byte("1")))

		txManager := database.NewTxManager(db)
		err = txManager.WithTx(ctx, func(ctx context.Context) error {
			return storage.Remove(ctx, "a")
		})
		require.NoError(t, err)

		_, found, err := storage.Get(ctx, "a")
		require.NoError(t, err)
		assert.False(t, found)
	})
}
