package host

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/joeydtaylor/steeze-apphost/pkg/codec"
	"github.com/joeydtaylor/steeze-apphost/pkg/dom"
	"github.com/joeydtaylor/steeze-apphost/pkg/manifest"
	"github.com/joeydtaylor/steeze-apphost/pkg/middleware/metrics"
	"github.com/joeydtaylor/steeze-apphost/pkg/registry"
	"github.com/joeydtaylor/steeze-apphost/pkg/render"
	"go.uber.org/zap"
)

type appList struct {
	Apps []string `json:"apps"`
}

func listApps(d BuildDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		out, err := codec.JSONStrict.Marshal(appList{Apps: d.Registry.AppKeys()})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, out, http.StatusOK)
	}
}

// prerender answers GET with empty props and POST with {"initialProps": {...}}.
func prerender(d BuildDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := d.Router.Param(r, "key")
		props := render.Props{}
		if r.Method == http.MethodPost {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if props, err = codec.DecodeProps(codec.JSONStrict, body); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		start := time.Now()
		markup, err := d.Registry.PrerenderApplication(key, registry.AppParams{InitialProps: props})
		metrics.ObserveApp(key, metrics.OpPrerender, err, time.Since(start))
		if err != nil {
			writeError(w, d.Log, err)
			return
		}
		writeHTML(w, markup)
	}
}

// page mounts the page's application into a fresh shell document.
func page(pg manifest.Page, d BuildDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := newDocument(d.Shell, pg.RootID)
		if err != nil {
			writeError(w, d.Log, err)
			return
		}

		start := time.Now()
		err = d.Registry.RunApplication(pg.App, registry.AppParams{
			InitialProps: pageProps(pg, r),
			RootTag:      doc.Root(pg.RootID),
		})
		metrics.ObserveApp(pg.App, metrics.OpRun, err, time.Since(start))
		if err != nil {
			writeError(w, d.Log, err)
			return
		}

		out, err := doc.HTML()
		if err != nil {
			writeError(w, d.Log, err)
			return
		}
		writeHTML(w, out)
	}
}

// pageProps overlays single-valued query parameters on the manifest props.
func pageProps(pg manifest.Page, r *http.Request) render.Props {
	props := render.Props(pg.Props).Clone()
	for k, v := range r.URL.Query() {
		if len(v) == 1 {
			props[k] = v[0]
		}
	}
	return props
}

func newDocument(shell, rootID string) (*dom.Document, error) {
	if shell == "" {
		return dom.Blank(rootID), nil
	}
	return dom.ParseString(shell)
}

func writeError(w http.ResponseWriter, log *zap.Logger, err error) {
	if errors.Is(err, registry.ErrUnregisteredApplication) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if log != nil {
		log.Error("render failed", zap.Error(err))
	}
	http.Error(w, "render failed", http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, markup string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, markup)
}

func writeJSON(w http.ResponseWriter, payload []byte, status int) {
	w.Header().Set("Content-Type", codec.JSONStrict.ContentType())
	w.WriteHeader(status)
	if len(payload) > 0 {
		_, _ = w.Write(payload)
		return
	}
	_, _ = w.Write([]byte(`{}`))
}
