package auth

import (
	"crypto/rsa"
	"time"
)

type Middleware struct {
	adminRole string
	devBypass bool

	// Assertion verification
	assertCookieName string
	assertKey        *rsa.PublicKey
	assertIssuer     string
	assertAudience   string
	assertLeeway     time.Duration
}

type contextKey struct{ name string }

var userCtxKey = &contextKey{"user"}
