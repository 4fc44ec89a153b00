package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// ProvideMetrics serves the default registry, which holds the request and
// application collectors of this package.
func ProvideMetrics() http.Handler {
	return promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{})
}

var Module = fx.Options(
	fx.Provide(fx.Annotate(ProvideMetrics, fx.ResultTags(`name:"metrics"`))),
)
