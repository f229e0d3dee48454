package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessionChecker struct {
	err       error
	gotEmail  string
	gotJTI    string
	callCount int
}

func (s *stubSessionChecker) ValidateSession(_ context.Context, email, jti string) error {
	s.callCount++
	s.gotEmail = email
	s.gotJTI = jti
	return s.err
}

func TestSessionVerifierActiveSession(t *testing.T) {
	sessions := &stubSessionChecker{}
	v := NewSessionVerifier(NewTokenVerifier(testSecret), sessions)

	token := signTestToken(t, testSecret, time.Hour)
	claims, err := v.ValidateToken(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, "tutor@example.com", claims.Email)
	assert.Equal(t, "tutor@example.com", sessions.gotEmail)
	assert.Equal(t, "test-jti", sessions.gotJTI)
}

func TestSessionVerifierSupersededSession(t *testing.T) {
	sessions := &stubSessionChecker{err: ErrSessionInvalidated}
	v := NewSessionVerifier(NewTokenVerifier(testSecret), sessions)

	// Signature and expiry are fine, but a later login replaced the JTI.
	token := signTestToken(t, testSecret, time.Hour)
	_, err := v.ValidateToken(context.Background(), token)

	assert.ErrorIs(t, err, ErrSessionInvalidated)
}

func TestSessionVerifierBadSignatureSkipsSessionCheck(t *testing.T) {
	sessions := &stubSessionChecker{}
	v := NewSessionVerifier(NewTokenVerifier(testSecret), sessions)

	token := signTestToken(t, "other-secret", time.Hour)
	_, err := v.ValidateToken(context.Background(), token)

	assert.Error(t, err)
	assert.Zero(t, sessions.callCount)
}
