package auth

import (
	"context"
	"slices"
)

func userFrom(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userCtxKey).(User)
	return u, ok && u.Username != ""
}

// CurrentUser returns the request's user, or the anonymous User.
func (m *Middleware) CurrentUser(ctx context.Context) User {
	u, _ := userFrom(ctx)
	return u
}

func (m *Middleware) IsAuthenticated(ctx context.Context) bool {
	_, ok := userFrom(ctx)
	return ok
}

func (m *Middleware) IsAdmin(ctx context.Context) bool {
	u, ok := userFrom(ctx)
	return ok && u.HasRole(m.adminRole)
}

// HasAnyRole reports whether the user holds one of roles. Admins hold all.
func (m *Middleware) HasAnyRole(ctx context.Context, roles ...string) bool {
	u, ok := userFrom(ctx)
	if !ok {
		return false
	}
	if u.HasRole(m.adminRole) {
		return true
	}
	return slices.ContainsFunc(roles, u.HasRole)
}

// IsUser reports whether the user is one of names. Admins match any name.
func (m *Middleware) IsUser(ctx context.Context, names ...string) bool {
	u, ok := userFrom(ctx)
	if !ok {
		return false
	}
	return u.HasRole(m.adminRole) || slices.Contains(names, u.Username)
}
