package service

import "context"

// SessionChecker reports whether a token's JTI is still the account's
// active session. Satisfied by AuthService.
type SessionChecker interface {
	ValidateSession(ctx context.Context, email, jti string) error
}

// SessionVerifier validates a token's signature and expiry, then
// confirms it still belongs to the account's active session. The
// resource API guards its routes with it so a superseded or logged-out
// token is rejected everywhere, not only on /auth/validate.
type SessionVerifier struct {
	verifier *TokenVerifier
	sessions SessionChecker
}

// NewSessionVerifier creates a SessionVerifier.
func NewSessionVerifier(verifier *TokenVerifier, sessions SessionChecker) *SessionVerifier {
	return &SessionVerifier{verifier: verifier, sessions: sessions}
}

// ValidateToken checks the token's signature, expiry and active session.
func (v *SessionVerifier) ValidateToken(ctx context.Context, tokenStr string) (*Claims, error) {
	claims, err := v.verifier.ValidateToken(ctx, tokenStr)
	if err != nil {
		return nil, err
	}
	if err := v.sessions.ValidateSession(ctx, claims.Email, claims.ID); err != nil {
		return nil, err
	}
	return claims, nil
}
