package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("identity-signing-key"))
	require.NoError(t, err)
	return token
}

func TestTokenService_DecodeClaims(t *testing.T) {
	svc := NewTokenService()

	t.Run("Success_ProfileClaims", func(t *testing.T) {
		token := signToken(t, &AccessTokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			Email:         "user@example.com",
			EmailVerified: true,
			Name:          "User",
			Premium:       true,
		})

		claims, err := svc.DecodeClaims(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.Subject)
		assert.Equal(t, "user@example.com", claims.Email)
		assert.True(t, claims.EmailVerified)
		assert.True(t, claims.Premium)
		assert.Equal(t, "User", claims.Name)
	})

	t.Run("Success_ExpiredTokenStillReadable", func(t *testing.T) {
		token := signToken(t, &AccessTokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})

		claims, err := svc.DecodeClaims(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.Subject)
	})

	t.Run("Error_Malformed", func(t *testing.T) {
		_, err := svc.DecodeClaims("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidAccessToken)
	})

	t.Run("Error_MissingSubject", func(t *testing.T) {
		_, err := svc.DecodeClaims(signToken(t, &AccessTokenClaims{Email: "user@example.com"}))
		assert.ErrorIs(t, err, ErrInvalidAccessToken)
	})
}
