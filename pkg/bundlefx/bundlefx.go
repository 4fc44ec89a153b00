// bundlefx/bundlefx.go
package bundlefx

import (
	"github.com/joeydtaylor/steeze-apphost/pkg/env"
	"github.com/joeydtaylor/steeze-apphost/pkg/middleware/auth"
	"github.com/joeydtaylor/steeze-apphost/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-apphost/pkg/middleware/metrics"
	"go.uber.org/fx"
)

// Module provides the environment plus the auth, logger and metrics
// middleware. Metrics are provided under name:"metrics".
var Module = fx.Options(
	fx.Provide(env.Load),
	auth.Module,
	logger.Module,
	metrics.Module,
)
