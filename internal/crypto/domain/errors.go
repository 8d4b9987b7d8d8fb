package domain

import (
	"github.com/allisson/passvault/internal/errors"
)

// Cryptographic failure definitions.
//
// Every envelope, KDF and key-size failure wraps ErrInvalidInput and fails
// closed: no partial or unauthenticated plaintext is ever returned alongside
// one of these errors. Messages never include key material.
var (
	// ErrUnsupportedAlgorithm indicates the requested AEAD algorithm is not supported.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates a key of unexpected length for its encryption type.
	//
	// Symmetric keys are 32 or 64 bytes; AEAD sealing keys are exactly 32 bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrDecryptionFailed indicates a decryption operation failed.
	//
	// The specific cause (wrong key, corrupted ciphertext, bad padding) is not
	// disclosed to prevent information leakage.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrMacMismatch indicates the envelope MAC did not verify.
	ErrMacMismatch = errors.Wrap(ErrDecryptionFailed, "mac mismatch")

	// ErrInvalidEncString indicates a serialized envelope could not be parsed.
	ErrInvalidEncString = errors.Wrap(errors.ErrInvalidInput, "invalid encrypted string")

	// ErrUnsupportedEncryptionType indicates an envelope discriminant that the
	// requested operation cannot handle.
	ErrUnsupportedEncryptionType = errors.Wrap(errors.ErrInvalidInput, "unsupported encryption type")

	// ErrUnsupportedKdf indicates a KDF identifier other than PBKDF2-SHA256.
	ErrUnsupportedKdf = errors.Wrap(errors.ErrInvalidInput, "unsupported kdf")

	// ErrKdfIterationsTooLow indicates a PBKDF2 iteration count below MinPbkdf2Iterations.
	ErrKdfIterationsTooLow = errors.Wrap(errors.ErrInvalidInput, "pbkdf2 iteration minimum is 5000")

	// ErrInvalidPublicKey indicates bytes that are not a DER-encoded SPKI RSA public key.
	ErrInvalidPublicKey = errors.Wrap(errors.ErrInvalidInput, "invalid public key")

	// ErrInvalidPrivateKey indicates bytes that are not a DER-encoded PKCS#8 RSA private key.
	ErrInvalidPrivateKey = errors.Wrap(errors.ErrInvalidInput, "invalid private key")

	// ErrInvalidRange indicates randomNumber was called with max < min.
	ErrInvalidRange = errors.Wrap(errors.ErrInvalidInput, "invalid random range")
)

// ErrKeyUnresolved indicates a dependent key in the hierarchy is missing.
//
// Distinct from the crypto failures above: it is recovered by re-authenticating
// or unlocking rather than by fixing input.
var ErrKeyUnresolved = errors.Wrap(errors.ErrNotFound, "key unresolved")
