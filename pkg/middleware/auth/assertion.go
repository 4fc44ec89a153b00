package auth

import (
	"errors"
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

func (m *Middleware) validateAssertion(raw string) (User, error) {
	pub := m.assertKey
	if pub == nil {
		return User{}, errors.New("assertion key not configured")
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(m.assertLeeway),
	)

	var claims assertionClaims

	tok, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return pub, nil
	})
	if err != nil || !tok.Valid {
		return User{}, errors.New("invalid assertion")
	}

	if m.assertIssuer != "" && claims.Issuer != m.assertIssuer {
		return User{}, errors.New("bad issuer")
	}

	if m.assertAudience != "" && !slices.Contains(claims.Audience, m.assertAudience) {
		return User{}, errors.New("bad audience")
	}

	username := claims.UID
	if username == "" {
		username = claims.Subject
	}
	if username == "" {
		return User{}, errors.New("missing uid")
	}

	return User{
		Username: username,
		Provider: "assert",
		Roles:    normalizeRoles(append([]string{claims.Role}, claims.Roles...)...),
	}, nil
}

// assertionClaims is the payload of an upstream-issued assertion.
type assertionClaims struct {
	jwt.RegisteredClaims
	UID   string   `json:"uid"`
	Roles []string `json:"roles"`
	Role  string   `json:"role"`
}
