// Package usecase implements the key hierarchy manager.
//
// The hierarchy for one account resolves in a fixed order:
//
//	master key -> generated encryption key -> private key -> organization/provider keys
//
// Each level is unwrapped from its encrypted form on disk using the level
// above it, then cached in memory. Locking drops the memory copies; logging
// out drops everything.
package usecase

import (
	"context"

	cryptoDomain "github.com/allisson/passvault/internal/crypto/domain"
	stateDomain "github.com/allisson/passvault/internal/state/domain"
)

// KeyUseCase manages every key of the hierarchy for the active (or a named)
// account. An empty userID always means the active account.
//
// Missing dependencies surface as ErrKeyUnresolved; malformed or tampered
// envelopes surface as the crypto failure family (ErrDecryptionFailed and
// friends). Concurrent callers resolving the same uncached key share one
// unwrap.
type KeyUseCase interface {
	// SetKey installs the master key in memory and refreshes its secure
	// storage copies: an auto copy when the vault timeout is "never", a
	// biometric copy when biometric unlock is enabled.
	SetKey(ctx context.Context, key *cryptoDomain.SymmetricKey, userID string) error

	// GetKey returns the in-memory master key or, for a non-empty suffix, a
	// validated copy from secure storage. An invalid stored copy is discarded.
	GetKey(ctx context.Context, suffix stateDomain.KeySuffix, userID string) (*cryptoDomain.SymmetricKey, error)

	HasKeyInMemory(ctx context.Context, userID string) (bool, error)
	HasKeyStored(ctx context.Context, suffix stateDomain.KeySuffix, userID string) (bool, error)

	// ValidateKey reports whether key unwraps this account's private key.
	ValidateKey(ctx context.Context, key *cryptoDomain.SymmetricKey, userID string) (bool, error)

	SetKeyHash(ctx context.Context, keyHash string, userID string) error
	GetKeyHash(ctx context.Context, userID string) (string, error)

	// CompareAndUpdateKeyHash checks password against the stored hash in
	// constant time. A match on a legacy server hash upgrades it to the local hash.
	CompareAndUpdateKeyHash(ctx context.Context, password string, key *cryptoDomain.SymmetricKey, userID string) (bool, error)

	// SetEncKey stores the master-key-wrapped generated encryption key.
	SetEncKey(ctx context.Context, encKey string, userID string) error
	HasEncKey(ctx context.Context, userID string) (bool, error)

	// GetEncKey returns the generated encryption key, unwrapping it with
	// masterKeyOverride or the in-memory master key when not cached.
	GetEncKey(ctx context.Context, masterKeyOverride *cryptoDomain.SymmetricKey, userID string) (*cryptoDomain.SymmetricKey, error)

	// SetEncPrivateKey stores the private key wrapped by the generated encryption key.
	SetEncPrivateKey(ctx context.Context, encPrivateKey string, userID string) error
	GetPrivateKey(ctx context.Context, userID string) ([]byte, error)
	GetPublicKey(ctx context.Context, userID string) ([]byte, error)

	// SetOrgKeys stores organization keys. Provider-wrapped keys are
	// unwrapped with the provider key and re-wrapped to the user's public key
	// before anything is written; a missing provider key fails the whole call.
	SetOrgKeys(
		ctx context.Context,
		orgs []cryptoDomain.OrganizationKey,
		providerOrgs []cryptoDomain.ProviderOrganizationKey,
		userID string,
	) error
	GetOrgKeys(ctx context.Context, userID string) (map[string]*cryptoDomain.SymmetricKey, error)
	GetOrgKey(ctx context.Context, orgID string, userID string) (*cryptoDomain.SymmetricKey, error)

	SetProviderKeys(ctx context.Context, providers []cryptoDomain.ProviderKey, userID string) error
	GetProviderKeys(ctx context.Context, userID string) (map[string]*cryptoDomain.SymmetricKey, error)
	GetProviderKey(ctx context.Context, providerID string, userID string) (*cryptoDomain.SymmetricKey, error)

	// SetPinProtectedKey wraps the master key with a PIN-derived key.
	SetPinProtectedKey(
		ctx context.Context,
		pin, salt string,
		kdf cryptoDomain.KdfConfig,
		key *cryptoDomain.SymmetricKey,
		userID string,
	) error
	// DecryptWithPin recovers the master key from the PIN-protected envelope.
	DecryptWithPin(
		ctx context.Context,
		pin, salt string,
		kdf cryptoDomain.KdfConfig,
		userID string,
	) (*cryptoDomain.SymmetricKey, error)

	// GetFingerprint renders the account's public key fingerprint phrase.
	GetFingerprint(ctx context.Context, fingerprintMaterial string, userID string) ([]string, error)

	// ClearKey drops the in-memory master key and, with clearSecureStorage,
	// its auto and biometric copies.
	ClearKey(ctx context.Context, clearSecureStorage bool, userID string) error
	ClearKeyHash(ctx context.Context, userID string) error
	ClearEncKey(ctx context.Context, memoryOnly bool, userID string) error
	ClearKeyPair(ctx context.Context, memoryOnly bool, userID string) error
	ClearOrgKeys(ctx context.Context, memoryOnly bool, userID string) error
	ClearProviderKeys(ctx context.Context, memoryOnly bool, userID string) error
	ClearPinProtectedKey(ctx context.Context, memoryOnly bool, userID string) error

	// ClearKeys cascades through every clear above. memoryOnly keeps the
	// encrypted material on disk and the secure storage copies (lock);
	// otherwise everything is removed (logout).
	ClearKeys(ctx context.Context, memoryOnly bool, userID string) error
}
