package auth

import (
	"net/http"
	"strings"
)

// devUserFromHeaders reads X-Dev-User, X-Dev-Roles (comma separated) and
// X-Dev-Role. Only consulted when AUTH_DEV_BYPASS=true.
func devUserFromHeaders(r *http.Request) User {
	name := strings.TrimSpace(r.Header.Get("X-Dev-User"))
	if name == "" {
		return User{}
	}
	roles := strings.Split(r.Header.Get("X-Dev-Roles"), ",")
	roles = append(roles, r.Header.Get("X-Dev-Role"))
	for i := range roles {
		roles[i] = strings.TrimSpace(roles[i])
	}
	return User{
		Username: name,
		Provider: "dev",
		Roles:    normalizeRoles(roles...),
	}
}
