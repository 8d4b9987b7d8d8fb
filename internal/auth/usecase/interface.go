// Package usecase implements the login strategy state machine.
//
// A login runs in three steps: build the token request for the chosen
// strategy, submit and classify the response, then post-process a success.
// A two-factor challenge parks the strategy in a single pending slot until
// the caller continues or abandons it. Pending logins never expire on their
// own; ClearPending or a new LogIn discards them.
package usecase

import (
	"context"

	authDomain "github.com/allisson/passvault/internal/auth/domain"
)

// AuthUseCase drives logins against the identity service and installs the
// resulting account and keys.
type AuthUseCase interface {
	// LogIn starts a new login, discarding any pending one. Transport and
	// protocol errors are returned unmodified.
	LogIn(ctx context.Context, creds authDomain.Credentials) (*authDomain.AuthResult, error)

	// LogInTwoFactor resubmits the pending login with the second factor
	// attached. An empty captchaToken reuses the bypass token of the
	// challenge. Returns ErrNoPendingLogIn when nothing is pending.
	LogInTwoFactor(
		ctx context.Context,
		twoFactor authDomain.TwoFactorInput,
		captchaToken string,
	) (*authDomain.AuthResult, error)

	// ClearPending abandons the pending login, if any.
	ClearPending()

	// HasPending reports whether a login awaits its second factor.
	HasPending() bool

	// LogOut clears every key of userID (the active account when empty),
	// purges its state and emits loggedOut. expired marks a logout caused by
	// the vault timeout.
	LogOut(ctx context.Context, userID string, expired bool) error
}
