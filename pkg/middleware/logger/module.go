package logger

import (
	"github.com/joeydtaylor/steeze-apphost/pkg/env"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Middleware struct{}

func ProvideLoggerMiddleware() *Middleware { return &Middleware{} }

func ProvideLogger(e env.Environment) *zap.Logger { return NewLog(e.LogDir, "system.log") }

var Module = fx.Options(
	fx.Provide(ProvideLoggerMiddleware),
	fx.Provide(ProvideLogger),
)
