package service

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/passvault/internal/crypto/domain"
)

func TestAEADManagerService_CreateCipher(t *testing.T) {
	manager := NewAEADManager(rand.Reader)
	validKey := make([]byte, 32)
	_, err := rand.Read(validKey)
	require.NoError(t, err)

	for _, alg := range []cryptoDomain.Algorithm{cryptoDomain.AESGCM, cryptoDomain.ChaCha20} {
		t.Run("Success_"+string(alg), func(t *testing.T) {
			c, err := manager.CreateCipher(validKey, alg)
			require.NoError(t, err)

			sealed, err := c.Seal([]byte("secure value"), []byte("aad"))
			require.NoError(t, err)

			out, err := c.Open(sealed, []byte("aad"))
			require.NoError(t, err)
			assert.Equal(t, "secure value", string(out))

			_, err = c.Open(sealed, []byte("other aad"))
			assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)

			_, err = c.Open(sealed[:4], []byte("aad"))
			assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
		})
	}

	t.Run("Error_UnsupportedAlgorithm", func(t *testing.T) {
		_, err := manager.CreateCipher(validKey, cryptoDomain.Algorithm("unsupported"))
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
	})

	t.Run("Error_InvalidKeySize", func(t *testing.T) {
		for _, key := range [][]byte{nil, {}, make([]byte, 16), make([]byte, 64)} {
			_, err := manager.CreateCipher(key, cryptoDomain.AESGCM)
			assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
		}
	})
}
