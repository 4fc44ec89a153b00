package registry

import (
	"github.com/joeydtaylor/steeze-apphost/pkg/render"
	"go.uber.org/zap"
)

// RunApplication mounts the application registered under key.
func (r *Registry) RunApplication(key string, p AppParams) error {
	dev := r.isDev()
	r.log.Info("running application",
		zap.String("appKey", key),
		zap.String("rootTag", render.Selector(p.RootTag)),
		zap.Any("initialProps", p.InitialProps.Clone()),
		zap.String("developmentWarnings", onOff(dev)),
		zap.String("performanceOptimizations", onOff(!dev)),
	)

	e, ok := r.lookup(key)
	if !ok {
		return &UnregisteredApplicationError{Key: key}
	}
	run, ok := runOf(e)
	if !ok {
		return &UnregisteredApplicationError{Key: key}
	}
	return run(p)
}

// PrerenderApplication returns the static markup of a component-backed
// application. Runnable entries fail the same way unknown keys do.
func (r *Registry) PrerenderApplication(key string, p AppParams) (string, error) {
	e, ok := r.lookup(key)
	if !ok {
		return "", &UnregisteredApplicationError{Key: key}
	}
	pre, ok := prerenderOf(e)
	if !ok {
		return "", &UnregisteredApplicationError{Key: key}
	}
	return pre(p)
}

// UnmountApplicationAtRootTag tears down whatever is mounted at mp. The
// registry itself is not touched.
func (r *Registry) UnmountApplicationAtRootTag(mp render.MountPoint) error {
	return r.renderer.Unmount(mp)
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
