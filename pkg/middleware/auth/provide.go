package auth

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ProvideAuthentication wires defaults and env config. A configured but
// unreadable assertion key is an error; no key just disables assertions.
func ProvideAuthentication() (*Middleware, error) {
	leeway := 60 * time.Second
	if v := strings.TrimSpace(os.Getenv("ASSERTION_LEEWAY_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			leeway = time.Duration(n) * time.Second
		}
	}

	assertCookie := strings.TrimSpace(os.Getenv("ASSERTION_COOKIE_NAME"))
	if assertCookie == "" {
		assertCookie = "assert"
	}

	m := &Middleware{
		adminRole:        os.Getenv("ADMIN_ROLE_NAME"),
		devBypass:        os.Getenv("AUTH_DEV_BYPASS") == "true",
		assertCookieName: assertCookie,
		assertIssuer:     strings.TrimSpace(os.Getenv("ASSERTION_ISSUER")),
		assertAudience:   strings.TrimSpace(os.Getenv("ASSERTION_AUDIENCE")),
		assertLeeway:     leeway,
	}

	if path := strings.TrimSpace(os.Getenv("ASSERTION_PUBLIC_KEY_FILE")); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("auth: read assertion key: %w", err)
		}
		key, err := jwt.ParseRSAPublicKeyFromPEM(b)
		if err != nil {
			return nil, fmt.Errorf("auth: parse assertion key: %w", err)
		}
		m.assertKey = key
	}
	return m, nil
}
