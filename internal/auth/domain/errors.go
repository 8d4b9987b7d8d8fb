package domain

import (
	"fmt"
	"net/http"

	"github.com/allisson/passvault/internal/errors"
)

var (
	// ErrAuthenticationRejected indicates the identity service refused the
	// credentials, the second factor or the captcha.
	ErrAuthenticationRejected = errors.Wrap(errors.ErrUnauthorized, "authentication rejected")

	// ErrNoPendingLogIn indicates a two-factor continuation with no retained login.
	ErrNoPendingLogIn = errors.Wrap(errors.ErrConflict, "no pending login")

	// ErrKeyConnector indicates the key connector could not serve or accept the vault key.
	ErrKeyConnector = errors.Wrap(errors.ErrUnavailable, "key connector failure")

	// ErrInvalidCredentials indicates credentials that failed local validation.
	ErrInvalidCredentials = errors.Wrap(errors.ErrInvalidInput, "invalid credentials")
)

// ErrorResponse is an error returned by the identity service or the key
// connector. Client errors other than 404 also match ErrAuthenticationRejected.
type ErrorResponse struct {
	StatusCode int
	Message    string
}

func (e *ErrorResponse) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("identity service error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("identity service error: status %d: %s", e.StatusCode, e.Message)
}

// Is lets errors.Is classify rejections without unwrapping.
func (e *ErrorResponse) Is(target error) bool {
	return target == ErrAuthenticationRejected && e.rejected()
}

func (e *ErrorResponse) rejected() bool {
	return e.StatusCode >= http.StatusBadRequest &&
		e.StatusCode < http.StatusInternalServerError &&
		e.StatusCode != http.StatusNotFound
}

// IsNotFound reports whether err is an ErrorResponse with status 404.
func IsNotFound(err error) bool {
	var resp *ErrorResponse
	return errors.As(err, &resp) && resp.StatusCode == http.StatusNotFound
}
