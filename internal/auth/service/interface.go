// Package service declares the remote collaborators of the login flow and
// decodes identity access tokens.
package service

import (
	"context"

	authDomain "github.com/allisson/passvault/internal/auth/domain"
)

// IdentityAPI is the remote identity service.
//
// Implementations return *authDomain.ErrorResponse for non-2xx replies so
// the login flow can tell a 404 from a rejection. Transport failures are
// returned unmodified.
type IdentityAPI interface {
	// PreLogin fetches the KDF settings declared for email.
	PreLogin(ctx context.Context, email string) (*authDomain.PreloginResponse, error)

	// PostIdentityToken submits a token request and returns the decoded response.
	PostIdentityToken(ctx context.Context, req *authDomain.TokenRequest) (*authDomain.IdentityResponse, error)

	// PostAccountKeys uploads a key pair generated for an account that had none.
	PostAccountKeys(ctx context.Context, accessToken string, req authDomain.KeysRequest) error

	// PostSetKeyConnectorKey registers a key connector enrolment.
	PostSetKeyConnectorKey(ctx context.Context, accessToken string, req authDomain.SetKeyConnectorKeyRequest) error
}

// KeyConnectorAPI custodies master keys for key connector users.
type KeyConnectorAPI interface {
	// GetUserKey returns the base64 master key held for the caller.
	GetUserKey(ctx context.Context, url, accessToken string) (string, error)

	// PostUserKey hands a new base64 master key to the key connector.
	PostUserKey(ctx context.Context, url, accessToken, key string) error
}

// TokenService reads the claims of identity access tokens.
type TokenService interface {
	DecodeClaims(accessToken string) (*AccessTokenClaims, error)
}
