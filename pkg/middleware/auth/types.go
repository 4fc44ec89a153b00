package auth

import "slices"

// User is the caller resolved for a request. The zero User is anonymous.
type User struct {
	Username string   `json:"username"`
	Provider string   `json:"provider"`
	Roles    []string `json:"roles"`
}

// Role is the primary role, used where a single label is needed.
func (u User) Role() string {
	if len(u.Roles) == 0 {
		return ""
	}
	return u.Roles[0]
}

func (u User) HasRole(name string) bool {
	return name != "" && slices.Contains(u.Roles, name)
}

// normalizeRoles drops blanks and duplicates, keeping first occurrence.
func normalizeRoles(in ...string) []string {
	var out []string
	for _, r := range in {
		if r != "" && !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}
