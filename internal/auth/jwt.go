// Package auth handles the bearer token splitdesk presents to the backend.
//
// The client never holds the signing key, so a JWT is only inspected, not
// verified: the backend stays the judge of validity. Inspection lets the
// client refuse to send a token it can already see has expired.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("authorization token has expired")
	ErrMissingToken = errors.New("authorization token required")
)

// Claims are the session claims the backend puts in its tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Token is a bearer token. Tokens that are not JWTs are treated as opaque and
// never expire client-side.
type Token struct {
	raw    string
	claims *Claims
}

// NewToken wraps raw. An empty raw yields ErrMissingToken.
func NewToken(raw string) (*Token, error) {
	if raw == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		// Opaque token
		return &Token{raw: raw}, nil
	}
	return &Token{raw: raw, claims: claims}, nil
}

// String returns the raw token.
func (t *Token) String() string {
	return t.raw
}

// Claims returns the decoded claims, or nil for opaque tokens.
func (t *Token) Claims() *Claims {
	return t.claims
}

// ExpiresAt returns the token's expiry and whether it has one.
func (t *Token) ExpiresAt() (time.Time, bool) {
	if t.claims == nil || t.claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return t.claims.ExpiresAt.Time, true
}

// Check returns ErrTokenExpired when the token expired at or before now.
func (t *Token) Check(now time.Time) error {
	exp, ok := t.ExpiresAt()
	if !ok {
		return nil
	}
	if !now.Before(exp) {
		return fmt.Errorf("%w (at %s)", ErrTokenExpired, exp.Format(time.RFC3339))
	}
	return nil
}
