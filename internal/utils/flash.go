// Package utils holds small helpers shared across handlers.  This file
// implements signed flash messages: the confirmation or error text a page
// shows after a mutation travels in an HS256 JWT keyed by the per-process
// session secret.  Because the secret is regenerated on every start,
// outstanding flashes die with the process, which is fine for short-lived
// confirmations.
package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Flash is one displayable message with its category ("success" or
// "error").
type Flash struct {
	Message  string
	Category string
}

// ErrInvalidFlash is returned for expired, tampered or foreign tokens.
var ErrInvalidFlash = errors.New("invalid flash token")

// FlashSigner issues and verifies flash tokens.
type FlashSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewFlashSigner builds a signer around the session secret.  A zero or
// negative ttl falls back to five minutes.
func NewFlashSigner(secret string, ttl time.Duration) *FlashSigner {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &FlashSigner{secret: []byte(secret), ttl: ttl}
}

// Issue signs a flash into a compact token.
func (s *FlashSigner) Issue(message, category string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"msg": message,
		"cat": category,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Parse verifies a token and returns the flash it carries.
func (s *FlashSigner) Parse(token string) (Flash, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Flash{}, ErrInvalidFlash
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Flash{}, ErrInvalidFlash
	}
	msg, _ := claims["msg"].(string)
	cat, _ := claims["cat"].(string)
	if msg == "" {
		return Flash{}, ErrInvalidFlash
	}
	return Flash{Message: msg, Category: cat}, nil
}
