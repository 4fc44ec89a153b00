package main

import (
	"html/template"
	"time"

	"github.com/joeydtaylor/steeze-apphost/pkg/registry"
	"github.com/joeydtaylor/steeze-apphost/pkg/render"
)

var helloTemplate = template.Must(template.New("hello").Parse(
	`<section class="hello"><h1>Hello {{if .name}}{{.name}}{{else}}there{{end}}</h1></section>`,
))

const helloStyles = `.hello h1 { font-family: sans-serif; color: #1b6f6a; }`

// registerDemoApps registers the applications bundled with the binary.
func registerDemoApps(reg *registry.Registry, rn render.Renderer) error {
	return reg.RegisterConfig([]registry.AppConfig{
		{
			Key: "hello",
			Component: func() render.Component {
				return render.Template(helloTemplate, "", render.WithStyles(helloStyles))
			},
		},
		{
			Key: "clock",
			Run: func(p registry.AppParams) error {
				now := time.Now().UTC().Format(time.RFC3339)
				return rn.Render(render.ComponentFunc(func(render.Props) (string, error) {
					return "<time>" + now + "</time>", nil
				}), p.InitialProps, p.RootTag)
			},
		},
	})
}
