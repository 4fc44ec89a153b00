package metrics

import (
	"errors"
	"time"

	"github.com/joeydtaylor/steeze-apphost/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	responseTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "response_time",
			Help:    "http response time.",
			Buckets: []float64{0.5, 1, 5, 10, 30, 60},
		},
	)

	totalHttpRequestsFromRole = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "total_http_requests_from_role", Help: "http requests from role"},
		[]string{"role"},
	)

	totalHttpRequestsToUri = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "total_http_requests_to_uri", Help: "http requests to uri"},
		[]string{"code", "uri", "method"},
	)

	totalHttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "total_http_requests", Help: "http requests by code, and method"},
		[]string{"code", "method"},
	)

	appInvocations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "app_invocations_total", Help: "application run/prerender calls by outcome"},
		[]string{"app", "op", "outcome"},
	)

	appRenderTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "app_render_seconds",
			Help:    "time spent in application run/prerender.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)

func init() {
	prometheus.MustRegister(
		responseTime,
		totalHttpRequestsFromRole,
		totalHttpRequestsToUri,
		totalHttpRequests,
		appInvocations,
		appRenderTime,
	)
}

// Ops recorded by ObserveApp.
const (
	OpRun       = "run"
	OpPrerender = "prerender"
)

// ObserveApp records one registry invocation. Keys that are not registered
// come from callers, so they share a single "" app label.
func ObserveApp(app, op string, err error, took time.Duration) {
	outcome := "ok"
	switch {
	case errors.Is(err, registry.ErrUnregisteredApplication):
		app, outcome = "", "unregistered"
	case err != nil:
		outcome = "error"
	}
	appInvocations.WithLabelValues(app, op, outcome).Inc()
	appRenderTime.WithLabelValues(op).Observe(took.Seconds())
}
