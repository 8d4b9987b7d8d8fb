package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gocloud.dev/secrets"
	"gocloud.dev/secrets/localsecrets"
)

// NewLocalKeeper returns a localsecrets keeper with a fresh random key.
func NewLocalKeeper(t *testing.T) *secrets.Keeper {
	t.Helper()

	key, err := localsecrets.NewRandomKey()
	require.NoError(t, err, "failed to generate local keeper key")

	return localsecrets.NewKeeper(key)
}

// OpenLocalKeeper opens a keeper for a base64key:// URI, for tests that need a
// keeper reopened on the same key.
func OpenLocalKeeper(t *testing.T, uri string) *secrets.Keeper {
	t.Helper()

	keeper, err := secrets.OpenKeeper(context.Background(), uri)
	require.NoError(t, err, "failed to open local keeper")
	return keeper
}
