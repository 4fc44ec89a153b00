package dom

import (
	"fmt"

	"github.com/joeydtaylor/steeze-apphost/pkg/render"
	"github.com/microcosm-cc/bluemonday"
)

// Renderer implements render.Renderer on top of Document. It only accepts
// mount points created by Document.Root.
type Renderer struct {
	policy *bluemonday.Policy
}

type Option func(*Renderer)

// WithPolicy sanitizes component markup (not stylesheets) through p.
func WithPolicy(p *bluemonday.Policy) Option { return func(r *Renderer) { r.policy = p } }

// WithUGCPolicy sanitizes with bluemonday's user generated content policy.
func WithUGCPolicy() Option { return WithPolicy(bluemonday.UGCPolicy()) }

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, o := range opts {
		o(r)
	}
	return r
}

var _ render.Renderer = (*Renderer)(nil)

func (r *Renderer) Render(c render.Component, props render.Props, mp render.MountPoint) error {
	root, err := asRoot(mp)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("dom: nil component for %q", root.id)
	}
	out, err := c.Render(props)
	if err != nil {
		return fmt.Errorf("dom: render %q: %w", root.id, err)
	}
	return root.doc.mount(root.id, r.sanitize(out), render.StylesOf(c))
}

func (r *Renderer) Prerender(c render.Component, props render.Props) (string, error) {
	return render.Markup(c, props, r.sanitize)
}

func (r *Renderer) Unmount(mp render.MountPoint) error {
	root, err := asRoot(mp)
	if err != nil {
		return err
	}
	return root.doc.unmount(root.id)
}

func (r *Renderer) sanitize(s string) string {
	if r.policy == nil {
		return s
	}
	return r.policy.Sanitize(s)
}

func asRoot(mp render.MountPoint) (*Root, error) {
	root, ok := mp.(*Root)
	if !ok || root == nil || root.doc == nil {
		return nil, fmt.Errorf("%w: %T", ErrForeignMountPoint, mp)
	}
	return root, nil
}
