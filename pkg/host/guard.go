package host

import (
	"net/http"

	"github.com/joeydtaylor/steeze-apphost/pkg/manifest"
	"github.com/joeydtaylor/steeze-apphost/pkg/middleware/auth"
)

// withGuard enforces a page guard. Anonymous callers of a restricted page
// get 401; authenticated callers failing the users/roles lists get 403.
func withGuard(next http.HandlerFunc, a *auth.Middleware, g manifest.Guard) http.HandlerFunc {
	if !g.Restricted() {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if a == nil || !a.IsAuthenticated(ctx) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if len(g.Users) > 0 && !a.IsUser(ctx, g.Users...) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		if len(g.Roles) > 0 && !a.HasAnyRole(ctx, g.Roles...) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next(w, r)
	}
}
