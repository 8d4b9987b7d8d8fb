// Package service provides the stateless cryptographic primitives: envelope
// encryption, RSA wrapping, key derivation, fingerprints and AEAD sealing.
package service

import (
	"context"

	cryptoDomain "github.com/allisson/passvault/internal/crypto/domain"
)

// AEAD seals values with an authenticated cipher. The nonce is prepended to
// the returned ciphertext.
type AEAD interface {
	Seal(plaintext, aad []byte) ([]byte, error)
	Open(sealed, aad []byte) ([]byte, error)
}

// AEADManager creates AEAD ciphers by algorithm.
type AEADManager interface {
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// EnvelopeService encrypts and decrypts self-describing envelopes.
//
// Decrypt verifies the MAC in constant time before any plaintext is
// produced whenever the resolved key carries a MAC subkey. A MAC failure is
// returned as ErrMacMismatch, never as altered plaintext.
type EnvelopeService interface {
	Encrypt(plaintext []byte, key *cryptoDomain.SymmetricKey) (*cryptoDomain.EncString, error)
	Decrypt(enc *cryptoDomain.EncString, key *cryptoDomain.SymmetricKey) ([]byte, error)
	EncryptToBytes(plaintext []byte, key *cryptoDomain.SymmetricKey) ([]byte, error)
	DecryptFromBytes(buf []byte, key *cryptoDomain.SymmetricKey) ([]byte, error)

	// RSAEncrypt wraps data to a DER-encoded SPKI public key with OAEP-SHA1.
	RSAEncrypt(data, publicKey []byte) (*cryptoDomain.EncString, error)
	// RSADecrypt unwraps a serialized RSA envelope with a DER-encoded PKCS#8
	// private key. The OAEP hash is selected by the envelope discriminant.
	RSADecrypt(enc string, privateKey []byte) ([]byte, error)
}

// KdfService derives and stretches keys from user secrets.
type KdfService interface {
	DeriveMasterKey(password, email string, kdf cryptoDomain.KdfConfig) (*cryptoDomain.SymmetricKey, error)
	Stretch(key *cryptoDomain.SymmetricKey) (*cryptoDomain.SymmetricKey, error)
	HashPassword(password string, key *cryptoDomain.SymmetricKey, purpose cryptoDomain.HashPurpose) (string, error)
	MakePinKey(pin, salt string, kdf cryptoDomain.KdfConfig) (*cryptoDomain.SymmetricKey, error)
}

// KeyManager generates key material for the key hierarchy.
type KeyManager interface {
	// MakeEncKey generates a 64-byte vault key wrapped by the (stretched) master key.
	MakeEncKey(masterKey *cryptoDomain.SymmetricKey) (*cryptoDomain.SymmetricKey, *cryptoDomain.EncString, error)
	// RewrapEncKey re-wraps an existing vault key under another master key.
	RewrapEncKey(encKey, masterKey *cryptoDomain.SymmetricKey) (*cryptoDomain.EncString, error)
	// MakeKeyPair generates an RSA-2048 key pair with the private key wrapped by encKey.
	MakeKeyPair(encKey *cryptoDomain.SymmetricKey) (publicKey []byte, privateKey *cryptoDomain.EncString, err error)
	PublicKeyFromPrivate(privateKey []byte) ([]byte, error)
	Fingerprint(fingerprintMaterial string, publicKey []byte) ([]string, error)
	RandomNumber(min, max int) (int, error)
	RandomBytes(n int) ([]byte, error)
}

// KMSService opens key management keepers by URI.
type KMSService interface {
	OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error)
}
