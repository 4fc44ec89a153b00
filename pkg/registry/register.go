package registry

import (
	"fmt"

	"github.com/joeydtaylor/steeze-apphost/pkg/render"
)

// AppConfig is one record for RegisterConfig. Run wins over Component when
// both are set.
type AppConfig struct {
	Key       string
	Component render.ComponentProvider
	Run       RunFunc
}

// RegisterComponent registers a component-backed application and returns key.
// The provider is called for every run and prerender; its result is never
// cached. Re-registering a key replaces the previous entry.
func (r *Registry) RegisterComponent(key string, provider render.ComponentProvider) string {
	if key == "" || provider == nil {
		panic("registry: key and component provider required")
	}
	rn := r.renderer
	r.store(key, RunnableWithPrerender{
		run: func(p AppParams) error {
			return rn.Render(provider(), p.InitialProps, p.RootTag)
		},
		prerender: func(p AppParams) (string, error) {
			props := p.InitialProps
			if props == nil {
				props = render.Props{}
			}
			return rn.Prerender(provider(), props)
		},
	})
	return key
}

// RegisterRunnable registers a raw run function and returns key.
//
// Runnable entries cannot be prerendered, and the renderer never sees their
// component, so stylesheet injection done for Styled components does not
// happen for them.
func (r *Registry) RegisterRunnable(key string, run RunFunc) string {
	if key == "" || run == nil {
		panic("registry: key and run function required")
	}
	r.store(key, RunnableOnly{run: run})
	return key
}

// RegisterConfig registers each record in order. It stops at the first record
// with neither Run nor Component; records before it stay registered.
func (r *Registry) RegisterConfig(configs []AppConfig) error {
	for i, c := range configs {
		switch {
		case c.Run != nil:
			r.RegisterRunnable(c.Key, c.Run)
		case c.Component != nil:
			r.RegisterComponent(c.Key, c.Component)
		default:
			return fmt.Errorf("registry: config %d (%q): %w", i, c.Key, ErrMissingComponentProvider)
		}
	}
	return nil
}

// MustRegisterConfig is RegisterConfig for bootstrap code that cannot go on
// without its applications.
func (r *Registry) MustRegisterConfig(configs []AppConfig) {
	if err := r.RegisterConfig(configs); err != nil {
		panic(err)
	}
}
