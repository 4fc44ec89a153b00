package logger

import (
	"net/http"
	"strings"
	"sync"
)

// maxLoggedBody caps request bodies copied into the access log.
const maxLoggedBody = 1 << 16

var (
	bodyLogMu       sync.RWMutex
	bodyLogPrefixes = []string{"/apps/"}
)

// AddBodyLogPrefixes extends the paths whose JSON bodies may be logged.
func AddBodyLogPrefixes(prefixes ...string) {
	bodyLogMu.Lock()
	for _, p := range prefixes {
		p = strings.TrimSpace(p)
		if p != "" {
			bodyLogPrefixes = append(bodyLogPrefixes, p)
		}
	}
	bodyLogMu.Unlock()
}

// bodyLoggable decides from the request line and headers alone, so bodies
// that will never be logged are left unread.
func bodyLoggable(r *http.Request) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return false
	}
	if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
		return false
	}
	if r.ContentLength > maxLoggedBody {
		return false
	}
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return false
	}
	bodyLogMu.RLock()
	defer bodyLogMu.RUnlock()
	for _, p := range bodyLogPrefixes {
		if strings.HasPrefix(r.URL.Path, p) {
			return true
		}
	}
	return false
}
