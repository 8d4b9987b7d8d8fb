package service

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/passvault/internal/crypto/domain"
)

func newTestEnvelopeService() EnvelopeService {
	return NewEnvelopeService(NewKdfService(), rand.Reader)
}

func randomKey(t *testing.T, size int) *cryptoDomain.SymmetricKey {
	t.Helper()
	raw := make([]byte, size)
	_, err := rand.Read(raw)
	require.NoError(t, err)
	key, err := cryptoDomain.NewSymmetricKey(raw)
	require.NoError(t, err)
	return key
}

func TestEnvelopeService_RoundTrip(t *testing.T) {
	svc := newTestEnvelopeService()

	plaintexts := [][]byte{
		{},
		[]byte("a"),
		[]byte("exactly sixteen!"),
		bytes.Repeat([]byte("vault item "), 100),
	}

	for _, size := range []int{32, 64} {
		key := randomKey(t, size)
		for _, p := range plaintexts {
			enc, err := svc.Encrypt(p, key)
			require.NoError(t, err)

			out, err := svc.Decrypt(enc, key)
			require.NoError(t, err)
			assert.Equal(t, p, out)
		}
	}
}

func TestEnvelopeService_Encrypt(t *testing.T) {
	svc := newTestEnvelopeService()

	t.Run("Success_MacKeyProducesMacVariant", func(t *testing.T) {
		enc, err := svc.Encrypt([]byte("secret"), randomKey(t, 64))
		require.NoError(t, err)
		assert.Equal(t, cryptoDomain.AesCbc256_HmacSha256_B64, enc.EncryptionType)
		assert.Len(t, enc.IV, cryptoDomain.IVSize)
		assert.Len(t, enc.Mac, cryptoDomain.MacSize)
	})

	t.Run("Success_PlainKeyProducesPlainVariant", func(t *testing.T) {
		enc, err := svc.Encrypt([]byte("secret"), randomKey(t, 32))
		require.NoError(t, err)
		assert.Equal(t, cryptoDomain.AesCbc256_B64, enc.EncryptionType)
		assert.Nil(t, enc.Mac)
	})

	t.Run("Success_FreshIVPerCall", func(t *testing.T) {
		key := randomKey(t, 64)
		a, err := svc.Encrypt([]byte("same"), key)
		require.NoError(t, err)
		b, err := svc.Encrypt([]byte("same"), key)
		require.NoError(t, err)
		assert.NotEqual(t, a.IV, b.IV)
	})

	t.Run("Error_NilKey", func(t *testing.T) {
		_, err := svc.Encrypt([]byte("secret"), nil)
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyUnresolved)
	})
}

func TestEnvelopeService_Decrypt_Tamper(t *testing.T) {
	svc := newTestEnvelopeService()
	key := randomKey(t, 64)

	enc, err := svc.Encrypt([]byte("do not alter me"), key)
	require.NoError(t, err)

	flip := func(b []byte, i int) []byte {
		out := bytes.Clone(b)
		out[i] ^= 0x01
		return out
	}

	cases := map[string]*cryptoDomain.EncString{}
	for i := range enc.Data {
		cases[fmt.Sprintf("data byte %d", i)] = &cryptoDomain.EncString{
			EncryptionType: enc.EncryptionType, IV: enc.IV, Data: flip(enc.Data, i), Mac: enc.Mac,
		}
	}
	cases["mac"] = &cryptoDomain.EncString{
		EncryptionType: enc.EncryptionType, IV: enc.IV, Data: enc.Data, Mac: flip(enc.Mac, 5),
	}
	cases["iv"] = &cryptoDomain.EncString{
		EncryptionType: enc.EncryptionType, IV: flip(enc.IV, 0), Data: enc.Data, Mac: enc.Mac,
	}
	cases["missing mac"] = &cryptoDomain.EncString{
		EncryptionType: enc.EncryptionType, IV: enc.IV, Data: enc.Data,
	}

	for name, tampered := range cases {
		t.Run(name, func(t *testing.T) {
			out, err := svc.Decrypt(tampered, key)
			assert.ErrorIs(t, err, cryptoDomain.ErrMacMismatch)
			assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
			assert.Nil(t, out)
		})
	}
}

func TestEnvelopeService_Decrypt_KeyResolution(t *testing.T) {
	svc := newTestEnvelopeService()
	kdf := NewKdfService()

	t.Run("Success_32ByteKeyStretchedForMacVariant", func(t *testing.T) {
		key := randomKey(t, 32)
		stretched, err := kdf.Stretch(key)
		require.NoError(t, err)

		enc, err := svc.Encrypt([]byte("legacy vault key"), stretched)
		require.NoError(t, err)

		out, err := svc.Decrypt(enc, key)
		require.NoError(t, err)
		assert.Equal(t, "legacy vault key", string(out))
	})

	t.Run("Success_LegacyAes128Split", func(t *testing.T) {
		raw := make([]byte, 32)
		_, err := rand.Read(raw)
		require.NoError(t, err)
		legacy, err := cryptoDomain.NewSymmetricKeyWithType(raw, cryptoDomain.AesCbc128_HmacSha256_B64)
		require.NoError(t, err)

		enc, err := svc.Encrypt([]byte("aes-128 data"), legacy)
		require.NoError(t, err)
		require.Equal(t, cryptoDomain.AesCbc128_HmacSha256_B64, enc.EncryptionType)

		plain, err := cryptoDomain.NewSymmetricKey(raw)
		require.NoError(t, err)

		out, err := svc.Decrypt(enc, plain)
		require.NoError(t, err)
		assert.Equal(t, "aes-128 data", string(out))
	})

	t.Run("Error_PlainEnvelopeWithMacKey", func(t *testing.T) {
		enc, err := svc.Encrypt([]byte("plain"), randomKey(t, 32))
		require.NoError(t, err)

		out, err := svc.Decrypt(enc, randomKey(t, 64))
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
		assert.Nil(t, out)
	})

	t.Run("Error_WrongKey", func(t *testing.T) {
		enc, err := svc.Encrypt([]byte("secret"), randomKey(t, 64))
		require.NoError(t, err)

		_, err = svc.Decrypt(enc, randomKey(t, 64))
		assert.ErrorIs(t, err, cryptoDomain.ErrMacMismatch)
	})

	t.Run("Error_RSAEnvelope", func(t *testing.T) {
		_, err := svc.Decrypt(&cryptoDomain.EncString{EncryptionType: cryptoDomain.Rsa2048_OaepSha1_B64}, randomKey(t, 64))
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedEncryptionType)
	})
}

func TestEnvelopeService_Bytes(t *testing.T) {
	svc := newTestEnvelopeService()
	key := randomKey(t, 64)

	buf, err := svc.EncryptToBytes([]byte("attachment"), key)
	require.NoError(t, err)
	assert.Equal(t, byte(cryptoDomain.AesCbc256_HmacSha256_B64), buf[0])

	out, err := svc.DecryptFromBytes(buf, key)
	require.NoError(t, err)
	assert.Equal(t, "attachment", string(out))

	buf[len(buf)-1] ^= 0x01
	_, err = svc.DecryptFromBytes(buf, key)
	assert.ErrorIs(t, err, cryptoDomain.ErrMacMismatch)
}

func TestEnvelopeService_RSA(t *testing.T) {
	svc := newTestEnvelopeService()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	publicKey, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	privateKey, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err)

	t.Run("Success_WrapDefaultsToOaepSha1", func(t *testing.T) {
		enc, err := svc.RSAEncrypt([]byte("org key"), publicKey)
		require.NoError(t, err)
		assert.Equal(t, cryptoDomain.Rsa2048_OaepSha1_B64, enc.EncryptionType)

		out, err := svc.RSADecrypt(enc.String(), privateKey)
		require.NoError(t, err)
		assert.Equal(t, "org key", string(out))
	})

	sha256Ciphertext, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, &priv.PublicKey, []byte("sha256 wrapped"), nil)
	require.NoError(t, err)
	b64 := base64.StdEncoding.EncodeToString(sha256Ciphertext)

	t.Run("Success_OaepSha256", func(t *testing.T) {
		out, err := svc.RSADecrypt("3."+b64, privateKey)
		require.NoError(t, err)
		assert.Equal(t, "sha256 wrapped", string(out))
	})

	t.Run("Success_HeaderLessIsOaepSha256", func(t *testing.T) {
		out, err := svc.RSADecrypt(b64, privateKey)
		require.NoError(t, err)
		assert.Equal(t, "sha256 wrapped", string(out))
	})

	t.Run("Success_LegacyMacIgnored", func(t *testing.T) {
		out, err := svc.RSADecrypt("5."+b64+"|"+base64.StdEncoding.EncodeToString([]byte("ignored")), privateKey)
		require.NoError(t, err)
		assert.Equal(t, "sha256 wrapped", string(out))
	})

	t.Run("Error_HashMismatch", func(t *testing.T) {
		_, err := svc.RSADecrypt("4."+b64, privateKey)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("Error_SymmetricDiscriminant", func(t *testing.T) {
		_, err := svc.RSADecrypt("2."+b64+"|"+b64+"|"+b64, privateKey)
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedEncryptionType)
	})

	t.Run("Error_InvalidPublicKey", func(t *testing.T) {
		_, err := svc.RSAEncrypt([]byte("x"), []byte("not a key"))
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidPublicKey)
	})

	t.Run("Error_InvalidPrivateKey", func(t *testing.T) {
		_, err := svc.RSADecrypt("3."+b64, []byte("not a key"))
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidPrivateKey)
	})
}

func TestPkcs7Unpad(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		ok    bool
	}{
		{"valid", append([]byte("abc"), bytes.Repeat([]byte{13}, 13)...), true},
		{"zero pad byte", append(bytes.Repeat([]byte{1}, 15), 0), false},
		{"pad larger than block", append(bytes.Repeat([]byte{1}, 15), 17), false},
		{"inconsistent padding", append(bytes.Repeat([]byte{1}, 14), 3, 2), false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pkcs7Unpad(tt.input, 16)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
			}
		})
	}
}
