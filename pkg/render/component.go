package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// Component is a UI description that renders itself to markup.
type Component interface {
	Render(props Props) (string, error)
}

// ComponentFunc adapts a plain function to Component.
type ComponentFunc func(props Props) (string, error)

func (f ComponentFunc) Render(props Props) (string, error) { return f(props) }

// ComponentProvider produces a fresh Component on every call.
type ComponentProvider func() Component

// Styled components carry the stylesheet they need in the host page.
type Styled interface {
	Styles() string
}

type templateComponent struct {
	t      *template.Template
	name   string
	styles string
}

// TemplateOption configures a Template component.
type TemplateOption func(*templateComponent)

// WithStyles attaches a stylesheet to a Template component.
func WithStyles(css string) TemplateOption {
	return func(c *templateComponent) { c.styles = css }
}

// Template builds a component that executes the named html/template with the
// props as data. An empty name executes t itself.
func Template(t *template.Template, name string, opts ...TemplateOption) Component {
	c := &templateComponent{t: t, name: name}
	for _, o := range opts {
		o(c)
	}
	if c.styles != "" {
		return styledTemplate{c}
	}
	return c
}

func (c *templateComponent) Render(props Props) (string, error) {
	if c.t == nil {
		return "", fmt.Errorf("render: nil template")
	}
	var buf bytes.Buffer
	var err error
	if c.name == "" {
		err = c.t.Execute(&buf, props)
	} else {
		err = c.t.ExecuteTemplate(&buf, c.name, props)
	}
	if err != nil {
		return "", fmt.Errorf("render: template %q: %w", c.name, err)
	}
	return buf.String(), nil
}

type styledTemplate struct{ *templateComponent }

func (s styledTemplate) Styles() string { return s.styles }

// StyleElement wraps css in a <style> element tagged for the apphost runtime.
// Style is raw text, so only a closing tag sequence needs neutralizing.
func StyleElement(css string) string {
	return `<style data-apphost="">` + strings.ReplaceAll(css, "</", `<\/`) + `</style>`
}

// Markup renders c with props and runs the result through filters in order.
// Styled components get their <style> element prepended after filtering so
// the markup is self-contained.
func Markup(c Component, props Props, filters ...func(string) string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("render: nil component")
	}
	out, err := c.Render(props)
	if err != nil {
		return "", err
	}
	for _, f := range filters {
		out = f(out)
	}
	if css := StylesOf(c); css != "" {
		return StyleElement(css) + out, nil
	}
	return out, nil
}

// StylesOf returns the stylesheet of a Styled component, or "".
func StylesOf(c Component) string {
	if s, ok := c.(Styled); ok {
		return s.Styles()
	}
	return ""
}
