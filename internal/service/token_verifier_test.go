package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, secret string, expiresIn time.Duration) string {
	t.Helper()

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "test-jti",
			Subject:   "tutor@example.com",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
		Email: "tutor@example.com",
		Role:  model.RoleTutor,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidateTokenRoundtrip(t *testing.T) {
	v := NewTokenVerifier(testSecret)

	token := signTestToken(t, testSecret, time.Hour)
	claims, err := v.ValidateToken(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, "tutor@example.com", claims.Email)
	assert.Equal(t, model.RoleTutor, claims.Role)
	assert.Equal(t, "test-jti", claims.ID)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	v := NewTokenVerifier(testSecret)

	token := signTestToken(t, "other-secret", time.Hour)
	_, err := v.ValidateToken(context.Background(), token)

	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	v := NewTokenVerifier(testSecret)

	token := signTestToken(t, testSecret, -time.Minute)
	_, err := v.ValidateToken(context.Background(), token)

	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	v := NewTokenVerifier(testSecret)

	_, err := v.ValidateToken(context.Background(), "not.a.jwt")
	assert.Error(t, err)
}
