package serverfx

import (
	"github.com/joeydtaylor/steeze-apphost/pkg/bundlefx"
	"github.com/joeydtaylor/steeze-apphost/pkg/transport/httpx"
	"go.uber.org/fx"
)

// Options allow per-service env keys/defaults without code duplication.
type Options struct {
	Service         string // for logs only
	ManifestEnv     string // e.g. "APPHOST_MANIFEST"
	DefaultManifest string // e.g. "apphost.toml"
	ListenAddrEnv   string // e.g. "SERVER_LISTEN_ADDRESS"
	DefaultListen   string // e.g. ":4000"
	TLSCertEnv      string // e.g. "SSL_SERVER_CERTIFICATE"
	TLSKeyEnv       string // e.g. "SSL_SERVER_KEY"
}

// DefaultOptions are the env keys used when a field is left empty.
func DefaultOptions() Options {
	return Options{
		Service:         "apphost",
		ManifestEnv:     "APPHOST_MANIFEST",
		DefaultManifest: "apphost.toml",
		ListenAddrEnv:   "SERVER_LISTEN_ADDRESS",
		DefaultListen:   ":4000",
		TLSCertEnv:      "SSL_SERVER_CERTIFICATE",
		TLSKeyEnv:       "SSL_SERVER_KEY",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Service == "" {
		o.Service = d.Service
	}
	if o.ManifestEnv == "" {
		o.ManifestEnv = d.ManifestEnv
	}
	if o.DefaultManifest == "" {
		o.DefaultManifest = d.DefaultManifest
	}
	if o.ListenAddrEnv == "" {
		o.ListenAddrEnv = d.ListenAddrEnv
	}
	if o.DefaultListen == "" {
		o.DefaultListen = d.DefaultListen
	}
	if o.TLSCertEnv == "" {
		o.TLSCertEnv = d.TLSCertEnv
	}
	if o.TLSKeyEnv == "" {
		o.TLSKeyEnv = d.TLSKeyEnv
	}
	return o
}

// Module returns a complete Fx option set. The application supplies a
// *registry.Registry (see ProvideRegistry) with its apps registered.
func Module(opts Options) fx.Option {
	return fx.Options(
		// Supply options to DI.
		fx.Supply(opts.withDefaults()),

		// Environment + middleware
		bundlefx.Module,

		// Renderer + router implementation
		fx.Provide(ProvideRenderer),
		fx.Provide(httpx.NewChi),

		// Router (named "app")
		fx.Provide(
			fx.Annotate(
				provideRouter,
				fx.ResultTags(`name:"app"`),
			),
		),

		// App lifecycle (starts HTTP server)
		fx.Invoke(registerHooks),
	)
}
