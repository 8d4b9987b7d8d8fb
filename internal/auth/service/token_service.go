package service

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/allisson/passvault/internal/errors"
)

// ErrInvalidAccessToken indicates a token whose claims cannot be read.
var ErrInvalidAccessToken = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid access token")

// AccessTokenClaims are the profile claims carried by an identity access token.
type AccessTokenClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Premium       bool   `json:"premium"`
	ClientID      string `json:"client_id"`
}

type tokenService struct {
	parser *jwt.Parser
}

// NewTokenService creates a TokenService.
//
// Signatures are not checked: the token was just received over TLS from the
// identity service and is only read for profile data. Authorization stays
// with the server.
func NewTokenService() TokenService {
	return &tokenService{parser: jwt.NewParser()}
}

func (s *tokenService) DecodeClaims(accessToken string) (*AccessTokenClaims, error) {
	claims := &AccessTokenClaims{}
	if _, _, err := s.parser.ParseUnverified(accessToken, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccessToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidAccessToken)
	}
	return claims, nil
}
