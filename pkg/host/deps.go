package host

import (
	"net/http"

	"github.com/joeydtaylor/steeze-apphost/pkg/middleware/auth"
	"github.com/joeydtaylor/steeze-apphost/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-apphost/pkg/registry"
	httpx "github.com/joeydtaylor/steeze-apphost/pkg/transport/httpx"
	"go.uber.org/zap"
)

type BuildDeps struct {
	Registry *registry.Registry
	Auth     *auth.Middleware
	LogMW    *logger.Middleware
	Metrics  http.Handler
	Router   httpx.Router
	Log      *zap.Logger
	// Shell is the page document markup; "" means a blank page per request.
	Shell string
}
