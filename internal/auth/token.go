package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fivetwenty-io/castore/internal/constants"
)

// Token represents an access token presented to the store.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Valid checks if the token is present and not expired.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Before(t.ExpiresAt)
}

// ParseToken builds a Token from a raw string. JWTs have their expiry read
// from the exp claim without signature verification; the server verifies.
// Any other non-empty string is treated as an opaque token that never
// expires.
func ParseToken(raw string) (*Token, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "Bearer "))
	token := &Token{AccessToken: raw}

	if strings.Count(raw, ".") != 2 {
		return token, nil
	}

	claims := jwt.MapClaims{}

	_, _, err := jwt.NewParser().ParseUnverified(raw, claims)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrInvalidJWT, err)
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrInvalidJWT, err)
	}

	if expiry != nil {
		token.ExpiresAt = expiry.Time
	}

	return token, nil
}

// TokenManager supplies access tokens to the HTTP transport.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	SetToken(token string, expiresAt time.Time)
}

// StaticTokenManager serves a fixed token and refuses it once expired.
type StaticTokenManager struct {
	mutex sync.RWMutex
	token *Token
}

// NewStaticTokenManager parses raw and wraps it in a manager.
func NewStaticTokenManager(raw string) (*StaticTokenManager, error) {
	token, err := ParseToken(raw)
	if err != nil {
		return nil, err
	}

	return &StaticTokenManager{token: token}, nil
}

// GetToken returns the token, or ErrTokenExpired.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if !m.token.Valid() {
		return "", constants.ErrTokenExpired
	}

	return m.token.AccessToken, nil
}

// SetToken replaces the token.
func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.token = &Token{AccessToken: token, ExpiresAt: expiresAt}
}

// ExpiresAt returns the current token's expiration time.
func (m *StaticTokenManager) ExpiresAt() time.Time {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.token.ExpiresAt
}
