package service

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	cryptoDomain "github.com/allisson/passvault/internal/crypto/domain"
)

// aeadCipher adapts a cipher.AEAD to the nonce-prefixed AEAD interface.
type aeadCipher struct {
	aead cipher.AEAD
	rand io.Reader
}

// NewAESGCM creates an AES-256-GCM cipher. The key must be exactly 32 bytes.
func NewAESGCM(key []byte, rand io.Reader) (AEAD, error) {
	if len(key) != 32 {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &aeadCipher{aead: aead, rand: rand}, nil
}

// NewChaCha20Poly1305 creates a ChaCha20-Poly1305 cipher. The key must be exactly 32 bytes.
func NewChaCha20Poly1305(key []byte, rand io.Reader) (AEAD, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 cipher: %w", err)
	}

	return &aeadCipher{aead: aead, rand: rand}, nil
}

func (a *aeadCipher) Seal(plaintext, aad []byte) ([]byte, error) {
	nonce := make([]byte, a.aead.NonceSize(), a.aead.NonceSize()+len(plaintext)+a.aead.Overhead())
	if _, err := io.ReadFull(a.rand, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return a.aead.Seal(nonce, nonce, plaintext, aad), nil
}

func (a *aeadCipher) Open(sealed, aad []byte) ([]byte, error) {
	n := a.aead.NonceSize()
	if len(sealed) < n+a.aead.Overhead() {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	plaintext, err := a.aead.Open(nil, sealed[:n], sealed[n:], aad)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}

// AEADManagerService creates AEAD ciphers for the secure storage backend.
type AEADManagerService struct {
	rand io.Reader
}

// NewAEADManager creates an AEADManagerService drawing nonces from rand.
func NewAEADManager(rand io.Reader) *AEADManagerService {
	return &AEADManagerService{rand: rand}
}

// CreateCipher returns an AEAD for alg keyed with a 32-byte key.
func (am *AEADManagerService) CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error) {
	if len(key) != 32 {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	switch alg {
	case cryptoDomain.AESGCM:
		return NewAESGCM(key, am.rand)
	case cryptoDomain.ChaCha20:
		return NewChaCha20Poly1305(key, am.rand)
	default:
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}
}
