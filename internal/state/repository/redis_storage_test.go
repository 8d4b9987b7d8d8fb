package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/passvault/internal/testutil"
)

func TestRedisStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_SaveAndGetWithPrefix", func(t *testing.T) {
		server, client := testutil.SetupRedis(t)
		storage := NewRedisStorage(client, "passvault")

		require.NoError(t, storage.Save(ctx, "user-1_tokens", []byte("tokens")))

		assert.True(t, server.Exists("passvault:user-1_tokens"))
		got, found, err := storage.Get(ctx, "user-1_tokens")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("tokens"), got)
	})

	t.Run("Success_NoPrefix", func(t *testing.T) {
		server, client := testutil.SetupRedis(t)
		storage := NewRedisStorage(client, "")

		require.NoError(t, storage.Save(ctx, "activeUserId", []byte("user-1")))
		assert.True(t, server.Exists("activeUserId"))
	})

	t.Run("Success_NotFound", func(t *testing.T) {
		_, client := testutil.SetupRedis(t)
		storage := NewRedisStorage(client, "passvault")

		got, found, err := storage.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, got)
	})

	t.Run("Success_Remove", func(t *testing.T) {
		server, client := testutil.SetupRedis(t)
		storage := NewRedisStorage(client, "passvault")
		require.NoError(t, storage.Save(ctx, "a", []byte("1")))
		require.NoError(t, storage.Save(ctx, "b", []byte("2")))

		require.NoError(t, storage.Remove(ctx, "a", "b", "missing"))

		assert.False(t, server.Exists("passvault:a"))
		assert.False(t, server.Exists("passvault:b"))
		assert.NoError(t, storage.Remove(ctx))
	})

	t.Run("Error_ServerDown", func(t *testing.T) {
		server, client := testutil.SetupRedis(t)
		storage := NewRedisStorage(client, "passvault")
		server.Close()

		_, _, err := storage.Get(ctx, "k")
		assert.Error(t, err)
		assert.Error(t, storage.Save(ctx, "k", []byte("v")))
	})
}
