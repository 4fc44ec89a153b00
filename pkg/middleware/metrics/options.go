package metrics

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests no route matched, so stray paths cannot
// grow the uri label set.
const unmatchedRoute = "unmatched"

type collectConfig struct {
	skip      map[string]struct{}
	normalize func(*http.Request) string
}

// CollectOption configures Collect.
type CollectOption func(*collectConfig)

// WithSkipPaths adds request paths that are never recorded. /metrics and
// /ping are always skipped.
func WithSkipPaths(paths ...string) CollectOption {
	return func(c *collectConfig) {
		for _, p := range paths {
			if p = strings.TrimSpace(p); p != "" {
				c.skip[p] = struct{}{}
			}
		}
	}
}

// WithPathNormalizer replaces the uri label function.
func WithPathNormalizer(fn func(*http.Request) string) CollectOption {
	return func(c *collectConfig) {
		if fn != nil {
			c.normalize = fn
		}
	}
}

func newCollectConfig(opts []CollectOption) *collectConfig {
	c := &collectConfig{
		skip:      map[string]struct{}{"/metrics": {}, "/ping": {}},
		normalize: routePattern,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *collectConfig) skipped(r *http.Request) bool {
	_, ok := c.skip[r.URL.Path]
	return ok
}

// routePattern labels by the matched chi route ("/apps/{key}/prerender")
// rather than the raw path.
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return unmatchedRoute
}
