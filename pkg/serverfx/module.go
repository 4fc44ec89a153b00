package serverfx

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/joeydtaylor/steeze-apphost/pkg/dom"
	"github.com/joeydtaylor/steeze-apphost/pkg/env"
	"github.com/joeydtaylor/steeze-apphost/pkg/host"
	"github.com/joeydtaylor/steeze-apphost/pkg/middleware/auth"
	"github.com/joeydtaylor/steeze-apphost/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-apphost/pkg/registry"
	"github.com/joeydtaylor/steeze-apphost/pkg/render"
	"github.com/joeydtaylor/steeze-apphost/pkg/transport/httpx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ProvideRenderer returns the DOM renderer, sanitizing when APP_SANITIZE is set.
func ProvideRenderer(e env.Environment) render.Renderer {
	if e.Sanitize {
		return dom.NewRenderer(dom.WithUGCPolicy())
	}
	return dom.NewRenderer()
}

// ProvideRegistry builds an fx constructor that creates the registry and
// runs register against it before anything else can see it.
func ProvideRegistry(register func(*registry.Registry) error) func(render.Renderer, *zap.Logger) (*registry.Registry, error) {
	return func(rn render.Renderer, log *zap.Logger) (*registry.Registry, error) {
		reg := registry.New(rn, registry.WithLogger(log))
		if register != nil {
			if err := register(reg); err != nil {
				return nil, err
			}
		}
		return reg, nil
	}
}

// ---- Router ----

type routerDeps struct {
	fx.In

	Opts Options

	Registry *registry.Registry
	AuthMW   *auth.Middleware
	LogMW    *logger.Middleware

	Metrics http.Handler `name:"metrics"`

	R   httpx.Router
	Log *zap.Logger
}

func provideRouter(d routerDeps) (http.Handler, error) {
	cfgPath := envOr(d.Opts.ManifestEnv, d.Opts.DefaultManifest)
	cfg, err := host.LoadConfig(cfgPath)
	if err != nil {
		d.Log.Error("manifest load failed", zap.Error(err), zap.String("path", cfgPath))
		return nil, err
	}
	shell, err := host.LoadShell(cfgPath, cfg)
	if err != nil {
		d.Log.Error("shell load failed", zap.Error(err), zap.String("path", cfgPath))
		return nil, err
	}
	d.Log.Info("manifest loaded",
		zap.String("path", cfgPath),
		zap.Int("pages", len(cfg.Pages)),
		zap.Strings("apps", cfg.Apps()),
	)

	return host.BuildRouter(cfg, host.BuildDeps{
		Registry: d.Registry,
		Auth:     d.AuthMW,
		LogMW:    d.LogMW,
		Metrics:  d.Metrics,
		Router:   d.R,
		Log:      d.Log,
		Shell:    shell,
	}), nil
}

// ---- Server lifecycle ----

type serverDeps struct {
	fx.In
	Opts   Options
	Logger *zap.Logger
	App    http.Handler `name:"app"`
}

func registerHooks(lc fx.Lifecycle, d serverDeps) {
	addr := envOr(d.Opts.ListenAddrEnv, d.Opts.DefaultListen)
	cert := os.Getenv(d.Opts.TLSCertEnv)
	key := os.Getenv(d.Opts.TLSKeyEnv)

	srv := &http.Server{
		Addr:         addr,
		Handler:      d.App,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		TLSConfig:    &tls.Config{MinVersion: tls.VersionTLS13, MaxVersion: tls.VersionTLS13},
	}
	useTLS := fileExists(cert) && fileExists(key)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if useTLS {
				d.Logger.Info("server starting (TLS)",
					zap.String("service", d.Opts.Service),
					zap.String("addr", addr),
					zap.String("cert", cert),
				)
				go func() {
					if err := srv.ListenAndServeTLS(cert, key); err != nil && !errors.Is(err, http.ErrServerClosed) {
						d.Logger.Fatal("server failed", zap.Error(err))
					}
				}()
				return nil
			}

			d.Logger.Info("server starting (PLAINTEXT)",
				zap.String("service", d.Opts.Service),
				zap.String("addr", addr),
			)
			srv.TLSConfig = nil
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					d.Logger.Fatal("server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			d.Logger.Info("server stopping", zap.String("service", d.Opts.Service))
			return srv.Shutdown(ctx)
		},
	})
}

// ---- helpers ----

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
