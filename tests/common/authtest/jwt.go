//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"auction-market/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID string) string {
	t.Helper()
	return h.signToken(t, userID, time.Now().Add(time.Hour))
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID string) string {
	t.Helper()
	return h.signToken(t, userID, time.Now().Add(-time.Hour))
}

func (h *JWTHelper) signToken(t *testing.T, userID string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Add(-time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.Secret))
	require.NoError(t, err)
	return signed
}
