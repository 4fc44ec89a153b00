package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joeydtaylor/steeze-apphost/pkg/registry"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveApp(t *testing.T) {
	before := testutil.ToFloat64(appInvocations.WithLabelValues("hello", OpRun, "error"))
	ObserveApp("hello", OpRun, errors.New("x"), time.Millisecond)
	ObserveApp("hello", OpRun, nil, time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(appInvocations.WithLabelValues("hello", OpRun, "error")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(appInvocations.WithLabelValues("hello", OpRun, "ok")), 1.0)
}

func TestObserveAppFoldsUnregisteredKeys(t *testing.T) {
	before := testutil.ToFloat64(appInvocations.WithLabelValues("", OpPrerender, "unregistered"))
	ObserveApp("random-1", OpPrerender, &registry.UnregisteredApplicationError{Key: "random-1"}, 0)
	ObserveApp("random-2", OpPrerender, &registry.UnregisteredApplicationError{Key: "random-2"}, 0)

	assert.Equal(t, before+2, testutil.ToFloat64(appInvocations.WithLabelValues("", OpPrerender, "unregistered")))
}

func TestCollectLabelsByRoutePattern(t *testing.T) {
	mux := chi.NewRouter()
	mux.Use(Collect(nil, WithSkipPaths("/healthz")))
	mux.Get("/apps/{key}/prerender", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	pattern := func() float64 {
		return testutil.ToFloat64(totalHttpRequestsToUri.WithLabelValues("202", "/apps/{key}/prerender", http.MethodGet))
	}
	unmatched := func() float64 {
		return testutil.ToFloat64(totalHttpRequestsToUri.WithLabelValues("404", unmatchedRoute, http.MethodGet))
	}
	skipped := func() float64 {
		return testutil.ToFloat64(totalHttpRequestsToUri.WithLabelValues("202", "/healthz", http.MethodGet))
	}
	p0, u0, s0 := pattern(), unmatched(), skipped()

	for _, path := range []string{"/apps/a/prerender", "/apps/b/prerender", "/nope", "/healthz"} {
		mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, p0+2, pattern())
	assert.Equal(t, u0+1, unmatched())
	assert.Equal(t, s0, skipped())
}

func TestCollectCustomNormalizer(t *testing.T) {
	h := Collect(nil, WithPathNormalizer(func(*http.Request) string { return "/normalized" }))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusAccepted) }),
	)
	before := testutil.ToFloat64(totalHttpRequestsToUri.WithLabelValues("202", "/normalized", http.MethodGet))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/apps", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(totalHttpRequestsToUri.WithLabelValues("202", "/normalized", http.MethodGet)))
}

func TestProvideMetricsServesAppCollectors(t *testing.T) {
	ObserveApp("hello", OpPrerender, nil, time.Millisecond)
	rec := httptest.NewRecorder()
	ProvideMetrics().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "app_invocations_total")
	assert.Contains(t, string(body), "app_render_seconds")
}
