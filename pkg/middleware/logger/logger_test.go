package logger

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetAccessLogger(zap.New(core))

	h := (&Middleware{}).Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("ok"))
	}))

	r := httptest.NewRequest(http.MethodPost, "/apps/hello/prerender", strings.NewReader(`{"initialProps":{}}`))
	r.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(httptest.NewRecorder(), r)

	r = httptest.NewRequest(http.MethodPost, "/elsewhere", strings.NewReader(`{"secret":1}`))
	r.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(httptest.NewRecorder(), r)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "http access", entries[0].Message)

	first := entries[0].ContextMap()
	assert.EqualValues(t, http.StatusTeapot, first["status"])
	assert.Equal(t, "/apps/hello/prerender", first["uri"])
	assert.Equal(t, `{"initialProps":{}}`, first["requestData"])

	_, logged := entries[1].ContextMap()["requestData"]
	assert.False(t, logged)
}

func TestNewLogWritesUnderDir(t *testing.T) {
	dir := t.TempDir()
	l := NewLog(dir, "system.log")
	l.Info("hello")
	assert.FileExists(t, dir+"/system.log")
}

func TestBodyRestoredForHandler(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetAccessLogger(zap.New(core))

	var seen string
	mux := chi.NewRouter()
	mux.Use((&Middleware{}).Middleware(nil))
	mux.Post("/apps/{key}/prerender", func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		seen = string(b)
	})

	big := `{"initialProps":{"pad":"` + strings.Repeat("x", maxLoggedBody) + `"}}`
	for _, body := range []string{`{"initialProps":{"a":1}}`, big} {
		r := httptest.NewRequest(http.MethodPost, "/apps/hello/prerender", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		r.ContentLength = -1
		mux.ServeHTTP(httptest.NewRecorder(), r)
		assert.Equal(t, body, seen)
	}

	entries := logs.All()
	require.Len(t, entries, 2)
	small := entries[0].ContextMap()
	assert.Equal(t, "hello", small["appKey"])
	assert.Equal(t, "/apps/{key}/prerender", small["route"])
	assert.Equal(t, `{"initialProps":{"a":1}}`, small["requestData"])
	_, logged := entries[1].ContextMap()["requestData"]
	assert.False(t, logged)
}
