package logger

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joeydtaylor/steeze-apphost/pkg/env"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLog tees JSON entries to stdout and a rotated file dir/name.
func NewLog(dir, name string) *zap.Logger {
	if dir == "" {
		dir = "log"
	}
	_ = os.MkdirAll(dir, 0o755)

	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	console := zapcore.Lock(os.Stdout)

	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(dir, name),
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	})

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(cfg), w, zap.InfoLevel),
		zapcore.NewCore(zapcore.NewJSONEncoder(cfg), console, zap.InfoLevel),
	)
	return zap.New(core)
}

var (
	accessMu         sync.RWMutex
	httpAccessLogger *zap.Logger
)

// accessLogger is created lazily so importing the package has no side effects.
func accessLogger() *zap.Logger {
	accessMu.RLock()
	l := httpAccessLogger
	accessMu.RUnlock()
	if l != nil {
		return l
	}
	accessMu.Lock()
	defer accessMu.Unlock()
	if httpAccessLogger == nil {
		httpAccessLogger = NewLog(env.LoadOrDefault().LogDir, "http-access.log")
	}
	return httpAccessLogger
}

// SetAccessLogger lets tests/CLIs override the access logger (optional).
func SetAccessLogger(l *zap.Logger) {
	if l != nil {
		accessMu.Lock()
		httpAccessLogger = l
		accessMu.Unlock()
	}
}
