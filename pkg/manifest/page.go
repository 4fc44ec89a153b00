package manifest

import (
	"errors"
	"path"
	"strings"
)

const DefaultRootID = "root"

// Page mounts one registered application at an HTTP path.
type Page struct {
	Path      string         `toml:"path"`
	App       string         `toml:"app"`
	RootID    string         `toml:"root_id"`
	Props     map[string]any `toml:"props"`
	Guard     Guard          `toml:"guard"`
	TimeoutMS int            `toml:"timeout_ms"`
}

type Guard struct {
	Roles       []string `toml:"roles"`
	Users       []string `toml:"users"`
	RequireAuth bool     `toml:"require_auth"`
}

// Restricted reports whether the guard needs an authenticated user.
func (g Guard) Restricted() bool {
	return g.RequireAuth || len(g.Users) > 0 || len(g.Roles) > 0
}

// normalize path/app/root id
func (p *Page) normalize() error {
	p.Path = strings.TrimSpace(p.Path)
	if p.Path == "" {
		return errors.New("path is required")
	}
	if !strings.HasPrefix(p.Path, "/") {
		p.Path = "/" + p.Path
	}
	if p.Path != "/" {
		p.Path = path.Clean(p.Path)
	}
	p.App = strings.TrimSpace(p.App)
	p.RootID = strings.TrimSpace(p.RootID)
	if p.RootID == "" {
		p.RootID = DefaultRootID
	}
	return nil
}

func (p *Page) validate() error {
	if p.App == "" {
		return errors.New("app is required")
	}
	if strings.HasPrefix(p.Path, "/apps") || p.Path == "/metrics" || p.Path == "/ping" {
		return errors.New("path collides with a built-in route")
	}
	if p.TimeoutMS < 0 {
		return errors.New("timeout_ms must be >= 0")
	}
	return nil
}
