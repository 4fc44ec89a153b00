package logger

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/joeydtaylor/steeze-apphost/pkg/middleware/auth"
	"go.uber.org/zap"
)

// Middleware writes one access entry per request. ca may be nil.
func (m *Middleware) Middleware(ca *auth.Middleware) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := accessLogger()
			ww := chimd.NewWrapResponseWriter(w, r.ProtoMajor)

			var body []byte
			if bodyLoggable(r) {
				body = readBody(r)
			}

			scheme := "http"
			if r.TLS != nil {
				scheme = "https"
			}

			start := time.Now()
			defer func() {
				var u auth.User
				if ca != nil {
					u = ca.CurrentUser(r.Context())
				}

				fields := []zap.Field{
					zap.String("requestId", chimd.GetReqID(r.Context())),
					zap.String("httpScheme", scheme),
					zap.Bool("isAuthenticated", u.Username != ""),
					zap.String("username", u.Username),
					zap.Strings("roles", u.Roles),
					zap.String("authenticationProvider", u.Provider),
					zap.String("httpProto", r.Proto),
					zap.String("httpMethod", r.Method),
					zap.String("remoteAddr", r.RemoteAddr),
					zap.String("uri", r.URL.Path),
					zap.Duration("lat", time.Since(start)),
					zap.Int("responseSize", ww.BytesWritten()),
					zap.Int("status", ww.Status()),
				}
				if rc := chi.RouteContext(r.Context()); rc != nil {
					if p := rc.RoutePattern(); p != "" {
						fields = append(fields, zap.String("route", p))
					}
					if key := rc.URLParam("key"); key != "" {
						fields = append(fields, zap.String("appKey", key))
					}
				}
				if len(body) > 0 {
					fields = append(fields, zap.ByteString("requestData", body))
				}
				l.Info("http access", fields...)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// readBody copies up to maxLoggedBody bytes and restores the full body for
// downstream handlers. Oversized bodies are not returned.
func readBody(r *http.Request) []byte {
	b, err := io.ReadAll(io.LimitReader(r.Body, maxLoggedBody+1))
	rest := r.Body
	r.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(b), rest), rest}
	if err != nil || len(b) > maxLoggedBody {
		return nil
	}
	return b
}
