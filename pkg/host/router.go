// pkg/host/router.go
package host

import (
	"net/http"
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/joeydtaylor/steeze-apphost/pkg/manifest"
	hmetrics "github.com/joeydtaylor/steeze-apphost/pkg/middleware/metrics"
	"go.uber.org/zap"
)

// BuildRouter wires the built-in routes and one GET route per manifest page.
// Pages whose app or root element is missing are logged, not fatal: they
// answer 404/500 until the registry or shell is fixed.
func BuildRouter(cfg manifest.Config, d BuildDeps) http.Handler {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	r := d.Router
	r.Use(chimd.RequestID, chimd.Recoverer, chimd.Heartbeat("/ping"))
	if d.Auth != nil {
		r.Use(d.Auth.Middleware())
	}
	if d.LogMW != nil {
		r.Use(d.LogMW.Middleware(d.Auth))
	}
	// metrics collector that references auth state without copying it
	r.Use(hmetrics.Collect(d.Auth))

	if d.Metrics != nil {
		r.Get("/metrics", d.Metrics)
	}
	r.Get("/apps", listApps(d))
	r.Get("/apps/{key}/prerender", prerender(d))
	r.Post("/apps/{key}/prerender", prerender(d))

	for _, pg := range cfg.Pages {
		checkPage(pg, d)
		var h http.Handler = withGuard(page(pg, d), d.Auth, pg.Guard)
		if pg.TimeoutMS > 0 {
			h = http.TimeoutHandler(h, time.Duration(pg.TimeoutMS)*time.Millisecond, "render timed out")
		}
		r.Get(pg.Path, h)
	}
	return r.Mux()
}

func checkPage(pg manifest.Page, d BuildDeps) {
	if !d.Registry.Has(pg.App) {
		d.Log.Error("page refers to unregistered application",
			zap.String("path", pg.Path),
			zap.String("app", pg.App),
			zap.Strings("registered", d.Registry.AppKeys()),
		)
	}
	doc, err := newDocument(d.Shell, pg.RootID)
	if err == nil {
		_, err = doc.Inner(pg.RootID)
	}
	if err != nil {
		d.Log.Error("page root not found in shell",
			zap.String("path", pg.Path),
			zap.String("rootId", pg.RootID),
			zap.Error(err),
		)
	}
}
