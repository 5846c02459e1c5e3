// Package session issues and verifies the signed tokens handed out after a
// letter/code login. The token carries the account partition key, so every
// authenticated request is scoped without re-checking the directory.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MrJamesThe3rd/stash/internal/account"
)

var ErrInvalidToken = errors.New("invalid session token")

// Claims is the JWT payload.
type Claims struct {
	Letter string `json:"letter"`
	Code   string `json:"code"`
	Label  string `json:"label,omitempty"`
	Admin  bool   `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the route.
func (m *Manager) Issue(route account.Route) (string, error) {
	now := time.Now()

	claims := Claims{
		Letter: route.Letter,
		Code:   route.Code,
		Label:  route.Label,
		Admin:  route.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Verify parses a token and returns the route it was issued for.
func (m *Manager) Verify(tokenString string) (*account.Route, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	key, err := account.ParseKey(claims.Letter, claims.Code)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &account.Route{Key: key, Label: claims.Label, IsAdmin: claims.Admin}, nil
}
