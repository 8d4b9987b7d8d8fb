package service

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/passvault/internal/crypto/domain"
)

func newTestKeyManager() (*KeyManagerService, EnvelopeService, KdfService) {
	kdf := NewKdfService()
	envelope := NewEnvelopeService(kdf, rand.Reader)
	return NewKeyManager(envelope, kdf, rand.Reader), envelope, kdf
}

func TestKeyManager_MakeEncKey(t *testing.T) {
	km, envelope, _ := newTestKeyManager()

	t.Run("Success_WrappedByStretchedMasterKey", func(t *testing.T) {
		masterKey := randomKey(t, 32)

		encKey, wrapped, err := km.MakeEncKey(masterKey)
		require.NoError(t, err)
		assert.Equal(t, 64, encKey.Len())
		assert.Equal(t, cryptoDomain.AesCbc256_HmacSha256_B64, wrapped.EncryptionType)

		raw, err := envelope.Decrypt(wrapped, masterKey)
		require.NoError(t, err)
		assert.Equal(t, encKey.Key(), raw)
	})

	t.Run("Error_NilMasterKey", func(t *testing.T) {
		_, _, err := km.MakeEncKey(nil)
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyUnresolved)
	})
}

func TestKeyManager_MakeKeyPair(t *testing.T) {
	km, envelope, _ := newTestKeyManager()
	encKey := randomKey(t, 64)

	publicKey, wrapped, err := km.MakeKeyPair(encKey)
	require.NoError(t, err)

	privateKey, err := envelope.Decrypt(wrapped, encKey)
	require.NoError(t, err)

	derived, err := km.PublicKeyFromPrivate(privateKey)
	require.NoError(t, err)
	assert.Equal(t, publicKey, derived)

	wrappedOrgKey, err := envelope.RSAEncrypt([]byte("org"), publicKey)
	require.NoError(t, err)
	out, err := envelope.RSADecrypt(wrappedOrgKey.String(), privateKey)
	require.NoError(t, err)
	assert.Equal(t, "org", string(out))

	_, err = km.PublicKeyFromPrivate([]byte("garbage"))
	assert.ErrorIs(t, err, cryptoDomain.ErrInvalidPrivateKey)
}

func TestKeyManager_Fingerprint(t *testing.T) {
	km, _, _ := newTestKeyManager()
	publicKey := []byte("public-key-bytes")

	t.Run("Success_KnownPhrase", func(t *testing.T) {
		phrase, err := km.Fingerprint("user-1", publicKey)
		require.NoError(t, err)
		assert.Equal(t, []string{"exquisite", "rewrite", "mountie", "providing", "squared"}, phrase)
	})

	t.Run("Success_Deterministic", func(t *testing.T) {
		a, err := km.Fingerprint("user-1", publicKey)
		require.NoError(t, err)
		b, err := km.Fingerprint("user-1", publicKey)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("Success_UserIDChangesPhrase", func(t *testing.T) {
		phrase, err := km.Fingerprint("user-2", publicKey)
		require.NoError(t, err)
		assert.Equal(t, []string{"crib", "confessed", "repaired", "brushing", "teaching"}, phrase)
	})

	t.Run("Error_HashTooSmall", func(t *testing.T) {
		_, err := hashPhrase(make([]byte, 8), wordList)
		assert.Error(t, err)
	})
}

func TestWordList(t *testing.T) {
	assert.Len(t, wordList, 7776)
	assert.Equal(t, "abandon", wordList[0])
	assert.Equal(t, "zone", wordList[len(wordList)-1])
}

func TestKeyManager_RandomNumber(t *testing.T) {
	t.Run("Success_RejectsOutOfRangeDraws", func(t *testing.T) {
		// range [10, 15] needs 3 bits: 7 and 6 are rejected, 3 is accepted.
		km := NewKeyManager(nil, nil, bytes.NewReader([]byte{0x07, 0xfe, 0x03}))
		n, err := km.RandomNumber(10, 15)
		require.NoError(t, err)
		assert.Equal(t, 13, n)
	})

	t.Run("Success_MultiByteBigEndian", func(t *testing.T) {
		// range [0, 999] needs 10 bits over 2 bytes: 0x0102 & 0x3ff = 258.
		km := NewKeyManager(nil, nil, bytes.NewReader([]byte{0x01, 0x02}))
		n, err := km.RandomNumber(0, 999)
		require.NoError(t, err)
		assert.Equal(t, 258, n)
	})

	t.Run("Success_SingleValueRange", func(t *testing.T) {
		km := NewKeyManager(nil, nil, bytes.NewReader(nil))
		n, err := km.RandomNumber(5, 5)
		require.NoError(t, err)
		assert.Equal(t, 5, n)
	})

	t.Run("Success_StaysInRange", func(t *testing.T) {
		km, _, _ := newTestKeyManager()
		for range 500 {
			n, err := km.RandomNumber(-3, 3)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, n, -3)
			assert.LessOrEqual(t, n, 3)
		}
	})

	t.Run("Error_InvertedRange", func(t *testing.T) {
		km, _, _ := newTestKeyManager()
		_, err := km.RandomNumber(5, 1)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidRange)
	})

	t.Run("Error_ReaderExhausted", func(t *testing.T) {
		km := NewKeyManager(nil, nil, bytes.NewReader([]byte{0x07}))
		_, err := km.RandomNumber(10, 15)
		assert.Error(t, err)
	})
}
