//go:build unit

package jwt_test

import (
	"testing"
	"time"

	pkgjwt "auction-market/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, claims pkgjwt.Claims, key string) string {
	t.Helper()
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func TestValidateToken(t *testing.T) {
	svc := pkgjwt.NewService(secret)

	t.Run("valid token", func(t *testing.T) {
		signed := sign(t, pkgjwt.Claims{
			UserID: "user-1",
			RegisteredClaims: gojwt.RegisteredClaims{
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}, secret)

		claims, err := svc.ValidateToken(signed)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
	})

	t.Run("expired token", func(t *testing.T) {
		signed := sign(t, pkgjwt.Claims{
			UserID: "user-1",
			RegisteredClaims: gojwt.RegisteredClaims{
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}, secret)

		_, err := svc.ValidateToken(signed)
		assert.ErrorIs(t, err, pkgjwt.ErrExpiredToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		signed := sign(t, pkgjwt.Claims{UserID: "user-1"}, "other-secret")
		_, err := svc.ValidateToken(signed)
		assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
	})

	t.Run("missing user id", func(t *testing.T) {
		signed := sign(t, pkgjwt.Claims{
			RegisteredClaims: gojwt.RegisteredClaims{
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}, secret)

		_, err := svc.ValidateToken(signed)
		assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
	})
}
