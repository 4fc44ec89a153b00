package registry

import "github.com/joeydtaylor/steeze-apphost/pkg/render"

// AppParams are the invocation parameters handed to an entry's run.
type AppParams struct {
	InitialProps render.Props
	RootTag      render.MountPoint
}

// RunFunc mounts an application using the given parameters.
type RunFunc func(p AppParams) error

// PrerenderFunc produces static markup for an application.
type PrerenderFunc func(p AppParams) (string, error)

// Entry is one registered application. It is either RunnableOnly or
// RunnableWithPrerender; no other implementations exist.
type Entry interface {
	Run(p AppParams) error
	sealed()
}

// Prerenderer is implemented by entries that can produce static markup.
type Prerenderer interface {
	Prerender(p AppParams) (string, error)
}

// RunnableOnly is an entry registered from a raw run function.
type RunnableOnly struct {
	run RunFunc
}

func (e RunnableOnly) Run(p AppParams) error { return e.run(p) }
func (RunnableOnly) sealed()                 {}

// RunnableWithPrerender is an entry registered from a component provider.
type RunnableWithPrerender struct {
	run       RunFunc
	prerender PrerenderFunc
}

func (e RunnableWithPrerender) Run(p AppParams) error { return e.run(p) }
func (e RunnableWithPrerender) Prerender(p AppParams) (string, error) {
	return e.prerender(p)
}
func (RunnableWithPrerender) sealed() {}

func runOf(e Entry) (RunFunc, bool) {
	switch v := e.(type) {
	case RunnableOnly:
		return v.run, v.run != nil
	case RunnableWithPrerender:
		return v.run, v.run != nil
	}
	return nil, false
}

func prerenderOf(e Entry) (PrerenderFunc, bool) {
	if v, ok := e.(RunnableWithPrerender); ok && v.prerender != nil {
		return v.prerender, true
	}
	return nil, false
}
