package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldPolicy(t *testing.T) {
	t.Run("Success_EveryFieldHasUniqueName", func(t *testing.T) {
		seen := map[string]Field{}
		for f := FieldProfile; f <= FieldTwoFactorTokens; f++ {
			p, err := f.Policy()
			require.NoError(t, err, "field %d has no policy", f)
			assert.NotEqual(t, LocationDefault, p.Location, p.Name)
			_, dup := seen[p.Name]
			assert.False(t, dup, "duplicate field name %s", p.Name)
			seen[p.Name] = f
		}
	})

	t.Run("Success_DecryptedKeyMaterialIsMemoryOnly", func(t *testing.T) {
		for _, f := range []Field{
			FieldMasterKey, FieldDecryptedEncKey, FieldDecryptedPrivateKey,
			FieldDecryptedOrganizationKeys, FieldDecryptedProviderKeys, FieldDecryptedPinProtected,
		} {
			p, err := f.Policy()
			require.NoError(t, err)
			assert.Equal(t, LocationMemory, p.Location, p.Name)
			assert.False(t, p.Secure, p.Name)
		}
	})

	t.Run("Success_StoredMasterKeyIsSecure", func(t *testing.T) {
		p, err := FieldStoredMasterKey.Policy()
		require.NoError(t, err)
		assert.True(t, p.Secure)
		assert.Equal(t, LocationDisk, p.Location)
	})

	t.Run("Error_UnknownField", func(t *testing.T) {
		_, err := Field(999).Policy()
		assert.ErrorIs(t, err, ErrUnknownField)
		assert.Equal(t, "unknown", Field(999).String())
	})
}

func TestAccountFields(t *testing.T) {
	fields := AccountFields()
	assert.Equal(t, FieldProfile, fields[0])
	for _, f := range fields {
		p, err := f.Policy()
		require.NoError(t, err)
		assert.Equal(t, ScopeAccount, p.Scope, p.Name)
	}
	for _, f := range []Field{FieldAppID, FieldTwoFactorTokens} {
		assert.NotContains(t, fields, f)
	}
}

func TestStorageKey(t *testing.T) {
	masterKey, _ := FieldStoredMasterKey.Policy()
	theme, _ := FieldTheme.Policy()
	profile, _ := FieldProfile.Policy()

	assert.Equal(t, "user-1_masterKey_auto", StorageKey(masterKey, "user-1", KeySuffixAuto))
	assert.Equal(t, "user-1_masterKey_biometric", StorageKey(masterKey, "user-1", KeySuffixBiometric))
	assert.Equal(t, "user-1_profile", StorageKey(profile, "user-1", KeySuffixNone))
	assert.Equal(t, "global_theme", StorageKey(theme, "ignored", KeySuffixNone))
	assert.False(t, strings.HasSuffix(StorageKey(profile, "u", KeySuffixNone), "_"))
}

func TestStorageOptions(t *testing.T) {
	opts := ForUser("user-1").WithLocation(LocationBoth).WithKeySuffix(KeySuffixAuto)

	assert.Equal(t, "user-1", opts.UserID)
	assert.Equal(t, LocationBoth, opts.Location)
	assert.Equal(t, KeySuffixAuto, opts.KeySuffix)
	assert.True(t, opts.Location.HasMemory())
	assert.True(t, opts.Location.HasDisk())
	assert.False(t, LocationMemory.HasDisk())
	assert.Equal(t, "default", LocationDefault.String())
}

func TestAccountTokens_Merge(t *testing.T) {
	stored := AccountTokens{AccessToken: "old-access", RefreshToken: "refresh"}

	merged := stored.Merge(AccountTokens{AccessToken: "new-access"})

	assert.Equal(t, "new-access", merged.AccessToken)
	assert.Equal(t, "refresh", merged.RefreshToken)
}

func TestAuthenticationStatus_String(t *testing.T) {
	assert.Equal(t, "active", AuthenticationStatusActive.String())
	assert.Equal(t, "unlocked", AuthenticationStatusUnlocked.String())
	assert.Equal(t, "locked", AuthenticationStatusLocked.String())
}
