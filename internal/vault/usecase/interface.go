// Package usecase implements the vault timeout and the process reload watchdog.
//
// Both run as periodic tasks. Start arms a task and is a no-op when it is
// already armed; Stop or Cancel disarms it and waits for the goroutine to exit.
package usecase

import (
	"context"

	stateDomain "github.com/allisson/passvault/internal/state/domain"
)

// LogOutHandler logs an account out. The login use case implements it.
type LogOutHandler interface {
	LogOut(ctx context.Context, userID string, expired bool) error
}

// ViewChecker reports whether a foreground view is open. An open view
// postpones both the vault timeout and the process reload.
type ViewChecker interface {
	IsViewOpen(ctx context.Context) bool
}

// CacheClearer drops decrypted vault data (ciphers, folders, collections)
// held for an account.
type CacheClearer interface {
	ClearCache(ctx context.Context, userID string) error
}

// VaultTimeoutUseCase locks or logs out accounts whose vault timeout elapsed.
type VaultTimeoutUseCase interface {
	// Start arms the periodic timeout check.
	Start(ctx context.Context)
	// Stop disarms the periodic check.
	Stop()

	// CheckTimeout runs one timeout check for the active account.
	CheckTimeout(ctx context.Context) error

	// ShouldLock reports whether the vault timeout of userID has elapsed.
	ShouldLock(ctx context.Context, userID string) (bool, error)

	// IsLocked reports whether userID has no master key in memory. An
	// account never unlocked in this process first tries its auto key.
	IsLocked(ctx context.Context, userID string) (bool, error)

	// Lock drops every in-memory key and decrypted cache of userID and
	// emits locked. Key connector accounts with no PIN and no biometric
	// unlock are logged out instead.
	Lock(ctx context.Context, userID string) error

	// LogOut logs userID out as an expired session.
	LogOut(ctx context.Context, userID string) error

	// SetVaultTimeoutOptions stores the timeout (nil means never) and its
	// action, then refreshes the stored copies of the master key.
	SetVaultTimeoutOptions(
		ctx context.Context,
		userID string,
		timeout *int,
		action stateDomain.VaultTimeoutAction,
	) error
}

// ProcessReloadUseCase reloads the host process after a lock so no
// decrypted material survives in the heap.
type ProcessReloadUseCase interface {
	// Start arms the watchdog unless some account keeps a PIN or biometric
	// unlock path.
	Start(ctx context.Context) error
	// Cancel disarms the watchdog.
	Cancel()
	// Armed reports whether the watchdog is running.
	Armed() bool
}
