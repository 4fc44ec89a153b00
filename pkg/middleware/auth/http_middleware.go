package auth

import (
	"context"
	"net/http"
	"strings"
)

func (m *Middleware) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Dev bypass for local testing (NEVER enable in prod)
			if m.devBypass {
				if u := devUserFromHeaders(r); u.Username != "" {
					next.ServeHTTP(w, r.WithContext(withUser(r.Context(), u)))
					return
				}
			}

			if raw := m.assertionFrom(r); raw != "" && m.assertKey != nil {
				if u, err := m.validateAssertion(raw); err == nil {
					next.ServeHTTP(w, r.WithContext(withUser(r.Context(), u)))
					return
				}
				// invalid assertions continue unauthenticated; guards decide
			}

			next.ServeHTTP(w, r)
		})
	}
}

// assertionFrom prefers the assertion cookie, then a bearer token.
func (m *Middleware) assertionFrom(r *http.Request) string {
	if c, err := r.Cookie(m.assertCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

func withUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userCtxKey, u)
}
