package metrics

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/middleware"
	"github.com/joeydtaylor/steeze-apphost/pkg/middleware/auth"
)

// Collect produces the HTTP middleware that records the request counters and
// the response time histogram. ca may be nil.
func Collect(ca *auth.Middleware, opts ...CollectOption) func(next http.Handler) http.Handler {
	cfg := newCollectConfig(opts)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.skipped(r) {
				next.ServeHTTP(w, r)
				return
			}
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				role := ""
				if ca != nil {
					role = ca.CurrentUser(r.Context()).Role()
				}
				code := strconv.Itoa(ww.Status())

				// the route pattern is only known once routing has run
				uri := cfg.normalize(r)

				totalHttpRequestsFromRole.WithLabelValues(role).Inc()
				totalHttpRequestsToUri.WithLabelValues(code, uri, r.Method).Inc()
				totalHttpRequests.WithLabelValues(code, r.Method).Inc()
				responseTime.Observe(time.Since(start).Seconds())
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
