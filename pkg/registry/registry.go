// Package registry maps application keys to renderable entry points and
// dispatches run / prerender / unmount calls to a render.Renderer.
package registry

import (
	"sync"

	"github.com/joeydtaylor/steeze-apphost/pkg/env"
	"github.com/joeydtaylor/steeze-apphost/pkg/render"
	"go.uber.org/zap"
)

// Registry is safe for concurrent use. The lock is never held while an
// entry runs, so entries may call back into the registry.
type Registry struct {
	renderer render.Renderer
	log      *zap.Logger
	isDev    func() bool

	mu      sync.RWMutex
	keys    []string
	entries map[string]Entry
}

type Option func(*Registry)

// WithLogger sets the logger used for run diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithDevelopmentFlag overrides how the development flag is read. The
// default consults the process environment on every RunApplication call.
func WithDevelopmentFlag(fn func() bool) Option {
	return func(r *Registry) {
		if fn != nil {
			r.isDev = fn
		}
	}
}

// New returns an empty registry delegating to renderer.
func New(renderer render.Renderer, opts ...Option) *Registry {
	if renderer == nil {
		panic("registry: renderer required")
	}
	r := &Registry{
		renderer: renderer,
		log:      zap.NewNop(),
		isDev:    env.IsDevelopment,
		entries:  make(map[string]Entry),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// AppKeys returns the registered keys in first-registration order.
func (r *Registry) AppKeys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Has reports whether key is registered, whatever its capabilities.
func (r *Registry) Has(key string) bool {
	_, ok := r.lookup(key)
	return ok
}

func (r *Registry) lookup(key string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	return e, ok
}

func (r *Registry) store(key string, e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.entries[key] = e
}
