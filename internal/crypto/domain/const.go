package domain

// Algorithm represents the AEAD algorithm used to seal values at rest in secure storage.
//
// Both algorithms provide Authenticated Encryption with Associated Data (AEAD).
// Envelope encryption of vault data uses EncryptionType instead; Algorithm only
// governs how the secure-storage backend seals values under its data key.
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	//
	// 256-bit key, 12-byte nonce, 16-byte tag. Preferred on CPUs with AES-NI.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption algorithm.
	//
	// 256-bit key, 12-byte nonce, 16-byte tag. Constant-time in software.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// EncryptionType is the discriminant carried by every serialized envelope.
//
// The numeric values are part of the persisted and wire formats and must never
// be renumbered.
type EncryptionType int

const (
	// AesCbc256_B64 is AES-256-CBC without a MAC. Format: iv|data.
	AesCbc256_B64 EncryptionType = 0
	// AesCbc128_HmacSha256_B64 is the legacy AES-128-CBC with HMAC-SHA256. Format: iv|data|mac.
	AesCbc128_HmacSha256_B64 EncryptionType = 1
	// AesCbc256_HmacSha256_B64 is AES-256-CBC with HMAC-SHA256. Format: iv|data|mac.
	AesCbc256_HmacSha256_B64 EncryptionType = 2
	// Rsa2048_OaepSha256_B64 is RSA-2048 OAEP with SHA-256. Format: data.
	Rsa2048_OaepSha256_B64 EncryptionType = 3
	// Rsa2048_OaepSha1_B64 is RSA-2048 OAEP with SHA-1. Format: data.
	Rsa2048_OaepSha1_B64 EncryptionType = 4
	// Rsa2048_OaepSha256_HmacSha256_B64 is a legacy RSA form. Format: data|mac.
	Rsa2048_OaepSha256_HmacSha256_B64 EncryptionType = 5
	// Rsa2048_OaepSha1_HmacSha256_B64 is a legacy RSA form. Format: data|mac.
	Rsa2048_OaepSha1_HmacSha256_B64 EncryptionType = 6
)

// IsRSA reports whether the discriminant belongs to the asymmetric family.
func (t EncryptionType) IsRSA() bool {
	return t >= Rsa2048_OaepSha256_B64 && t <= Rsa2048_OaepSha1_HmacSha256_B64
}

// HasMac reports whether envelopes of this type carry a MAC part.
func (t EncryptionType) HasMac() bool {
	switch t {
	case AesCbc128_HmacSha256_B64, AesCbc256_HmacSha256_B64,
		Rsa2048_OaepSha256_HmacSha256_B64, Rsa2048_OaepSha1_HmacSha256_B64:
		return true
	}
	return false
}

// partCount returns how many pipe-delimited parts the serialized body has.
func (t EncryptionType) partCount() int {
	switch t {
	case AesCbc256_B64:
		return 2
	case AesCbc128_HmacSha256_B64, AesCbc256_HmacSha256_B64:
		return 3
	case Rsa2048_OaepSha256_B64, Rsa2048_OaepSha1_B64:
		return 1
	case Rsa2048_OaepSha256_HmacSha256_B64, Rsa2048_OaepSha1_HmacSha256_B64:
		return 2
	}
	return 0
}

// KdfType identifies the key derivation function an account uses.
type KdfType int

const (
	// PBKDF2_SHA256 is the only supported KDF.
	PBKDF2_SHA256 KdfType = 0
)

// HashPurpose selects the iteration count of the password verifier.
type HashPurpose int

const (
	// HashPurposeServerAuthorization produces the hash sent to the identity service.
	HashPurposeServerAuthorization HashPurpose = 1
	// HashPurposeLocalAuthorization produces the hash kept to verify the password offline.
	HashPurposeLocalAuthorization HashPurpose = 2
)

const (
	// MinPbkdf2Iterations is the lowest iteration count accepted for master key derivation.
	MinPbkdf2Iterations = 5000
	// DefaultPbkdf2Iterations is used when the account does not declare a count.
	DefaultPbkdf2Iterations = 5000

	// IVSize is the AES-CBC initialization vector length.
	IVSize = 16
	// MacSize is the HMAC-SHA256 output length.
	MacSize = 32
)
