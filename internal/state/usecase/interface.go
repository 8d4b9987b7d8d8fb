// Package usecase implements the multi-account session state store.
//
// Every read and write names a Field; the field's static policy together with
// the caller's StorageOptions decides which backing store is touched. Values
// are CBOR-encoded, so any serializable Go value can be stored.
package usecase

import (
	"context"

	stateDomain "github.com/allisson/passvault/internal/state/domain"
)

// StorageService is a byte-oriented backing store.
//
// Implementations: repository.MemoryStorage, SQLiteStorage, PostgreSQLStorage,
// MySQLStorage, RedisStorage and SecureStorage.
type StorageService interface {
	// Get returns the value stored under key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Save stores value under key, replacing any previous value.
	Save(ctx context.Context, key string, value []byte) error
	// Remove deletes keys. Missing keys are ignored.
	Remove(ctx context.Context, keys ...string) error
}

// StatusSnapshot is broadcast to subscribers whenever the account set or the
// active account changes.
type StatusSnapshot struct {
	ActiveUserID string
	Statuses     map[string]stateDomain.AuthenticationStatus
}

// StateUseCase is the session state store shared by the key hierarchy, the
// authentication flow and the vault timeout.
//
// Location rules:
//   - LocationMemory touches only the in-process store.
//   - LocationDisk touches only persistent storage, or secure storage when the
//     field is secure or UseSecureStorage is set.
//   - LocationBoth reads memory first and falls back to disk without writing
//     back; writes go to both.
//
// Secure access with no secure storage configured fails with
// ErrSecureStorageUnavailable; it never falls back to plain disk.
//
// Writes for one account are serialized. Update runs a read-modify-write
// under the account's lock, and Get/Set/Remove called with the context it
// passes join that lock instead of waiting on it.
type StateUseCase interface {
	// Init reloads the authenticated account list and the active user from disk.
	Init(ctx context.Context) error

	// Get decodes the value of field into dst. It returns false when absent.
	Get(ctx context.Context, field stateDomain.Field, dst any, opts stateDomain.StorageOptions) (bool, error)

	// Set encodes and stores value. A nil value removes the field.
	Set(ctx context.Context, field stateDomain.Field, value any, opts stateDomain.StorageOptions) error

	// Remove deletes field from every store its options resolve to.
	Remove(ctx context.Context, field stateDomain.Field, opts stateDomain.StorageOptions) error

	// Update runs fn while holding the lock of userID. An empty userID targets
	// the active account; stateDomain.GlobalScope locks the global settings.
	Update(ctx context.Context, userID string, fn func(ctx context.Context) error) error

	// AddAccount persists a freshly authenticated account, merges its tokens
	// with any stored ones and makes it active.
	AddAccount(ctx context.Context, account stateDomain.Account) error

	// SetActiveUser switches the active account and broadcasts statuses.
	// Unknown user ids are ignored.
	SetActiveUser(ctx context.Context, userID string) error

	// ActiveUserID returns the active user id, or "" when none.
	ActiveUserID() string

	// Accounts returns the authenticated user ids in login order.
	Accounts() []string

	// GetAccount returns the profile and tokens of userID.
	GetAccount(ctx context.Context, userID string) (*stateDomain.Account, error)

	// Purge removes userID (the active user when empty) from every store.
	// Purging the active account activates the next remaining one.
	Purge(ctx context.Context, userID string) error

	// AccountStatuses computes the authentication status of every account.
	AccountStatuses(ctx context.Context) (map[string]stateDomain.AuthenticationStatus, error)

	// Subscribe returns a channel of status snapshots and its unsubscribe func.
	Subscribe(buffer int) (<-chan StatusSnapshot, func())

	// HasSecureStorage reports whether a secure storage backend is configured.
	HasSecureStorage() bool
}
