package domain

import (
	"crypto/subtle"
	"encoding/base64"
)

// SymmetricKey is an immutable symmetric key with its encryption and optional MAC subkeys.
//
// The subkey split depends on the encryption type:
//   - AesCbc256_B64: 32-byte key, whole key encrypts, no MAC subkey
//   - AesCbc128_HmacSha256_B64: 32-byte legacy key split 16/16
//   - AesCbc256_HmacSha256_B64: 64-byte key split 32/32
//
// Accessors return copies so callers cannot mutate the key.
type SymmetricKey struct {
	key     []byte
	encKey  []byte
	macKey  []byte
	encType EncryptionType
}

// NewSymmetricKey infers the encryption type from the key length: 32 bytes is
// AesCbc256_B64 and 64 bytes is AesCbc256_HmacSha256_B64.
func NewSymmetricKey(key []byte) (*SymmetricKey, error) {
	switch len(key) {
	case 32:
		return NewSymmetricKeyWithType(key, AesCbc256_B64)
	case 64:
		return NewSymmetricKeyWithType(key, AesCbc256_HmacSha256_B64)
	}
	return nil, ErrInvalidKeySize
}

// NewSymmetricKeyWithType builds a key for an explicit encryption type.
func NewSymmetricKeyWithType(key []byte, encType EncryptionType) (*SymmetricKey, error) {
	k := &SymmetricKey{key: clone(key), encType: encType}

	switch {
	case encType == AesCbc256_B64 && len(key) == 32:
		k.encKey = k.key
	case encType == AesCbc128_HmacSha256_B64 && len(key) == 32:
		k.encKey = k.key[:16]
		k.macKey = k.key[16:]
	case encType == AesCbc256_HmacSha256_B64 && len(key) == 64:
		k.encKey = k.key[:32]
		k.macKey = k.key[32:]
	case encType.IsRSA():
		return nil, ErrUnsupportedEncryptionType
	default:
		return nil, ErrInvalidKeySize
	}

	return k, nil
}

// Key returns a copy of the full key bytes.
func (k *SymmetricKey) Key() []byte { return clone(k.key) }

// EncKey returns a copy of the encryption subkey.
func (k *SymmetricKey) EncKey() []byte { return clone(k.encKey) }

// MacKey returns a copy of the MAC subkey, or nil when the key has none.
func (k *SymmetricKey) MacKey() []byte { return clone(k.macKey) }

// EncType returns the encryption type this key was built for.
func (k *SymmetricKey) EncType() EncryptionType { return k.encType }

// HasMacKey reports whether the key carries a MAC subkey.
func (k *SymmetricKey) HasMacKey() bool { return len(k.macKey) > 0 }

// Len returns the full key length in bytes.
func (k *SymmetricKey) Len() int { return len(k.key) }

// KeyB64 returns the key encoded as standard base64, the form used for persistence.
func (k *SymmetricKey) KeyB64() string {
	return base64.StdEncoding.EncodeToString(k.key)
}

// Equal compares two keys in constant time.
func (k *SymmetricKey) Equal(other *SymmetricKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.encType == other.encType && subtle.ConstantTimeCompare(k.key, other.key) == 1
}

// Destroy zeroes the key material. The key must not be used afterwards.
func (k *SymmetricKey) Destroy() {
	if k == nil {
		return
	}
	Zero(k.key)
}

// SymmetricKeyFromB64 decodes a persisted base64 key.
func SymmetricKeyFromB64(s string) (*SymmetricKey, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidKeySize
	}
	defer Zero(raw)
	return NewSymmetricKey(raw)
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
