package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rsa"
	"crypto/sha1" //nolint:gosec // OAEP-SHA1 is required for legacy wrapped keys
	"crypto/sha256"
	"crypto/x509"
	"fmt"
	"hash"
	"io"

	cryptoDomain "github.com/allisson/passvault/internal/crypto/domain"
)

type envelopeService struct {
	kdf  KdfService
	rand io.Reader
}

// NewEnvelopeService creates an EnvelopeService. The KdfService stretches
// 32-byte keys presented against AesCbc256_HmacSha256_B64 envelopes.
func NewEnvelopeService(kdf KdfService, rand io.Reader) EnvelopeService {
	return &envelopeService{kdf: kdf, rand: rand}
}

func (s *envelopeService) Encrypt(
	plaintext []byte,
	key *cryptoDomain.SymmetricKey,
) (*cryptoDomain.EncString, error) {
	if key == nil {
		return nil, cryptoDomain.ErrKeyUnresolved
	}

	iv := make([]byte, cryptoDomain.IVSize)
	if _, err := io.ReadFull(s.rand, iv); err != nil {
		return nil, fmt.Errorf("failed to generate iv: %w", err)
	}

	data, err := aesCbcEncrypt(plaintext, iv, key.EncKey())
	if err != nil {
		return nil, err
	}

	enc := &cryptoDomain.EncString{EncryptionType: key.EncType(), IV: iv, Data: data}
	if key.HasMacKey() {
		enc.Mac = computeMac(key.MacKey(), iv, data)
	}

	return enc, nil
}

func (s *envelopeService) Decrypt(
	enc *cryptoDomain.EncString,
	key *cryptoDomain.SymmetricKey,
) ([]byte, error) {
	if key == nil {
		return nil, cryptoDomain.ErrKeyUnresolved
	}
	if enc == nil || enc.EncryptionType.IsRSA() {
		return nil, cryptoDomain.ErrUnsupportedEncryptionType
	}

	theKey, err := s.resolveLegacyKey(enc.EncryptionType, key)
	if err != nil {
		return nil, err
	}

	if theKey.EncType() != enc.EncryptionType {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	if theKey.HasMacKey() {
		if len(enc.Mac) == 0 {
			return nil, cryptoDomain.ErrMacMismatch
		}
		if !hmac.Equal(enc.Mac, computeMac(theKey.MacKey(), enc.IV, enc.Data)) {
			return nil, cryptoDomain.ErrMacMismatch
		}
	}

	return aesCbcDecrypt(enc.Data, enc.IV, theKey.EncKey())
}

// resolveLegacyKey maps a 32-byte key onto the two legacy MAC'd paths:
// type 1 splits it 16/16 and type 2 stretches it.
func (s *envelopeService) resolveLegacyKey(
	encType cryptoDomain.EncryptionType,
	key *cryptoDomain.SymmetricKey,
) (*cryptoDomain.SymmetricKey, error) {
	if key.EncType() != cryptoDomain.AesCbc256_B64 {
		return key, nil
	}

	switch encType {
	case cryptoDomain.AesCbc128_HmacSha256_B64:
		raw := key.Key()
		defer cryptoDomain.Zero(raw)
		return cryptoDomain.NewSymmetricKeyWithType(raw, cryptoDomain.AesCbc128_HmacSha256_B64)
	case cryptoDomain.AesCbc256_HmacSha256_B64:
		return s.kdf.Stretch(key)
	}

	return key, nil
}

func (s *envelopeService) EncryptToBytes(plaintext []byte, key *cryptoDomain.SymmetricKey) ([]byte, error) {
	enc, err := s.Encrypt(plaintext, key)
	if err != nil {
		return nil, err
	}
	return enc.MarshalBinary()
}

func (s *envelopeService) DecryptFromBytes(buf []byte, key *cryptoDomain.SymmetricKey) ([]byte, error) {
	enc, err := cryptoDomain.ParseEncArrayBuffer(buf)
	if err != nil {
		return nil, err
	}
	return s.Decrypt(enc, key)
}

func (s *envelopeService) RSAEncrypt(data, publicKey []byte) (*cryptoDomain.EncString, error) {
	pub, err := parsePublicKey(publicKey)
	if err != nil {
		return nil, err
	}

	ciphertext, err := rsa.EncryptOAEP(sha1.New(), s.rand, pub, data, nil) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to rsa encrypt: %w", err)
	}

	return &cryptoDomain.EncString{
		EncryptionType: cryptoDomain.Rsa2048_OaepSha1_B64,
		Data:           ciphertext,
	}, nil
}

func (s *envelopeService) RSADecrypt(encValue string, privateKey []byte) ([]byte, error) {
	enc, err := cryptoDomain.ParseRSAEncString(encValue)
	if err != nil {
		return nil, err
	}

	var h hash.Hash
	switch enc.EncryptionType {
	case cryptoDomain.Rsa2048_OaepSha256_B64, cryptoDomain.Rsa2048_OaepSha256_HmacSha256_B64:
		h = sha256.New()
	case cryptoDomain.Rsa2048_OaepSha1_B64, cryptoDomain.Rsa2048_OaepSha1_HmacSha256_B64:
		h = sha1.New() //nolint:gosec
	default:
		return nil, cryptoDomain.ErrUnsupportedEncryptionType
	}

	priv, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	plaintext, err := rsa.DecryptOAEP(h, nil, priv, enc.Data, nil)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}

func computeMac(macKey, iv, data []byte) []byte {
	m := hmac.New(sha256.New, macKey)
	m.Write(iv)
	m.Write(data)
	return m.Sum(nil)
}

func aesCbcEncrypt(plaintext, iv, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
	return out, nil
}

func aesCbcDecrypt(data, iv, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, cryptoDomain.ErrInvalidKeySize
	}
	if len(iv) != aes.BlockSize || len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, data)
	return pkcs7Unpad(out, aes.BlockSize)
}

func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	out := make([]byte, len(b), len(b)+n)
	copy(out, b)
	for range n {
		out = append(out, byte(n))
	}
	return out
}

func pkcs7Unpad(b []byte, blockSize int) ([]byte, error) {
	if len(b) == 0 {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, cryptoDomain.ErrDecryptionFailed
		}
	}
	return b[:len(b)-n], nil
}

func parsePublicKey(der []byte) (*rsa.PublicKey, error) {
	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, cryptoDomain.ErrInvalidPublicKey
	}
	pub, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, cryptoDomain.ErrInvalidPublicKey
	}
	return pub, nil
}

func parsePrivateKey(der []byte) (*rsa.PrivateKey, error) {
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, cryptoDomain.ErrInvalidPrivateKey
	}
	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, cryptoDomain.ErrInvalidPrivateKey
	}
	return priv, nil
}
