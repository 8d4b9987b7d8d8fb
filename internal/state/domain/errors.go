package domain

import (
	"github.com/allisson/passvault/internal/errors"
)

var (
	// ErrSecureStorageUnavailable indicates a secure field was accessed with no
	// secure storage configured. Callers must not retry on plain disk.
	ErrSecureStorageUnavailable = errors.Wrap(errors.ErrUnavailable, "secure storage unavailable")

	// ErrUnknownField indicates a Field with no policy entry.
	ErrUnknownField = errors.Wrap(errors.ErrInvalidInput, "unknown state field")

	// ErrNoActiveAccount indicates an account-scoped write with no user id and no active user.
	ErrNoActiveAccount = errors.Wrap(errors.ErrNotFound, "no active account")

	// ErrAccountNotFound indicates a user id that is not an authenticated account.
	ErrAccountNotFound = errors.Wrap(errors.ErrNotFound, "account not found")

	// ErrInvalidAccount indicates an account without a user id.
	ErrInvalidAccount = errors.Wrap(errors.ErrInvalidInput, "account user id is required")

	// ErrInvalidKeySuffix indicates a key suffix used on a field that is not secure.
	ErrInvalidKeySuffix = errors.Wrap(errors.ErrInvalidInput, "key suffix requires secure storage")
)
