package registry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/joeydtaylor/steeze-apphost/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type renderCall struct {
	markup string
	props  render.Props
	root   render.MountPoint
}

// recorder renders components to strings and remembers every call.
type recorder struct {
	renders   []renderCall
	unmounted []render.MountPoint
	err       error
}

func (r *recorder) Render(c render.Component, props render.Props, mp render.MountPoint) error {
	if r.err != nil {
		return r.err
	}
	out, err := c.Render(props)
	if err != nil {
		return err
	}
	r.renders = append(r.renders, renderCall{markup: out, props: props, root: mp})
	return nil
}

func (r *recorder) Prerender(c render.Component, props render.Props) (string, error) {
	return render.Markup(c, props)
}

func (r *recorder) Unmount(mp render.MountPoint) error {
	r.unmounted = append(r.unmounted, mp)
	return nil
}

func text(s string) render.ComponentProvider {
	return func() render.Component {
		return render.ComponentFunc(func(p render.Props) (string, error) {
			return fmt.Sprintf("%s:%v", s, p["foo"]), nil
		})
	}
}

func newTestRegistry(t *testing.T) (*Registry, *recorder) {
	t.Helper()
	rec := &recorder{}
	return New(rec, WithDevelopmentFlag(func() bool { return true })), rec
}

func TestRegisterComponent(t *testing.T) {
	reg, _ := newTestRegistry(t)

	assert.Equal(t, "app", reg.RegisterComponent("app", text("a")))
	assert.Equal(t, []string{"app"}, reg.AppKeys())

	out, err := reg.PrerenderApplication("app", AppParams{})
	require.NoError(t, err)
	assert.Equal(t, "a:<nil>", out)
}

func TestRegisterComponentOverwrites(t *testing.T) {
	reg, rec := newTestRegistry(t)

	reg.RegisterComponent("other", text("o"))
	reg.RegisterComponent("k", text("first"))
	reg.RegisterComponent("k", text("second"))

	assert.Equal(t, []string{"other", "k"}, reg.AppKeys())

	require.NoError(t, reg.RunApplication("k", AppParams{RootTag: render.RootTag("root")}))
	require.Len(t, rec.renders, 1)
	assert.Equal(t, "second:<nil>", rec.renders[0].markup)

	out, err := reg.PrerenderApplication("k", AppParams{})
	require.NoError(t, err)
	assert.Equal(t, "second:<nil>", out)
}

func TestProviderCalledPerInvocation(t *testing.T) {
	reg, _ := newTestRegistry(t)
	calls := 0
	reg.RegisterComponent("count", func() render.Component {
		calls++
		return render.ComponentFunc(func(render.Props) (string, error) { return "", nil })
	})
	assert.Equal(t, 0, calls)

	_, err := reg.PrerenderApplication("count", AppParams{})
	require.NoError(t, err)
	require.NoError(t, reg.RunApplication("count", AppParams{RootTag: render.RootTag("r")}))
	_, err = reg.PrerenderApplication("count", AppParams{})
	require.NoError(t, err)

	assert.Equal(t, 3, calls)
}

func TestUnregistered(t *testing.T) {
	reg, rec := newTestRegistry(t)

	err := reg.RunApplication("ghost", AppParams{RootTag: render.RootTag("root")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnregisteredApplication))

	var ue *UnregisteredApplicationError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "ghost", ue.Key)
	assert.Contains(t, err.Error(), `"ghost"`)
	assert.Contains(t, err.Error(), "import error")
	assert.Contains(t, err.Error(), "RegisterComponent")

	_, err = reg.PrerenderApplication("ghost", AppParams{})
	assert.True(t, errors.Is(err, ErrUnregisteredApplication))

	assert.Empty(t, rec.renders)
}

func TestRunnableLacksPrerender(t *testing.T) {
	reg, _ := newTestRegistry(t)
	var got AppParams
	assert.Equal(t, "raw", reg.RegisterRunnable("raw", func(p AppParams) error {
		got = p
		return nil
	}))

	assert.Contains(t, reg.AppKeys(), "raw")
	assert.True(t, reg.Has("raw"))

	_, err := reg.PrerenderApplication("raw", AppParams{})
	assert.True(t, errors.Is(err, ErrUnregisteredApplication))

	params := AppParams{InitialProps: render.Props{"foo": 1}, RootTag: render.RootTag("root")}
	require.NoError(t, reg.RunApplication("raw", params))
	assert.Equal(t, params, got)
}

func TestRunForwardsParams(t *testing.T) {
	reg, rec := newTestRegistry(t)
	reg.RegisterComponent("x", text("x"))

	root := render.RootTag("mount")
	require.NoError(t, reg.RunApplication("x", AppParams{RootTag: root, InitialProps: render.Props{"foo": 1}}))

	require.Len(t, rec.renders, 1)
	assert.Equal(t, root, rec.renders[0].root)
	assert.Equal(t, render.Props{"foo": 1}, rec.renders[0].props)
	assert.Equal(t, "x:1", rec.renders[0].markup)
}

func TestRunPropagatesRendererError(t *testing.T) {
	reg, rec := newTestRegistry(t)
	rec.err = errors.New("no host")
	reg.RegisterComponent("x", text("x"))

	err := reg.RunApplication("x", AppParams{RootTag: render.RootTag("r")})
	assert.EqualError(t, err, "no host")
}

func TestRegisterConfig(t *testing.T) {
	t.Run("dispatches by record shape", func(t *testing.T) {
		reg, rec := newTestRegistry(t)
		ran := false
		err := reg.RegisterConfig([]AppConfig{
			{Key: "a", Component: text("a")},
			{Key: "b", Run: func(AppParams) error { ran = true; return nil }},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, reg.AppKeys())

		_, err = reg.PrerenderApplication("a", AppParams{})
		require.NoError(t, err)
		_, err = reg.PrerenderApplication("b", AppParams{})
		assert.True(t, errors.Is(err, ErrUnregisteredApplication))

		require.NoError(t, reg.RunApplication("b", AppParams{RootTag: render.RootTag("r")}))
		assert.True(t, ran)
		assert.Empty(t, rec.renders)
	})

	t.Run("run wins over component", func(t *testing.T) {
		reg, _ := newTestRegistry(t)
		require.NoError(t, reg.RegisterConfig([]AppConfig{
			{Key: "both", Component: text("c"), Run: func(AppParams) error { return nil }},
		}))
		_, err := reg.PrerenderApplication("both", AppParams{})
		assert.True(t, errors.Is(err, ErrUnregisteredApplication))
	})

	t.Run("fails fast on missing provider", func(t *testing.T) {
		reg, _ := newTestRegistry(t)
		err := reg.RegisterConfig([]AppConfig{
			{Key: "ok", Component: text("ok")},
			{Key: "c"},
			{Key: "later", Component: text("later")},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingComponentProvider))
		assert.Equal(t, []string{"ok"}, reg.AppKeys())
		assert.False(t, reg.Has("c"))

		assert.Panics(t, func() { reg.MustRegisterConfig([]AppConfig{{Key: "c"}}) })
	})
}

func TestAppKeysStableAndCopied(t *testing.T) {
	reg, _ := newTestRegistry(t)
	reg.RegisterComponent("one", text("1"))
	reg.RegisterRunnable("two", func(AppParams) error { return nil })

	first := reg.AppKeys()
	assert.Equal(t, first, reg.AppKeys())

	first[0] = "mutated"
	assert.Equal(t, []string{"one", "two"}, reg.AppKeys())
}

func TestRegistrationGuards(t *testing.T) {
	reg, _ := newTestRegistry(t)
	assert.Panics(t, func() { reg.RegisterComponent("", text("x")) })
	assert.Panics(t, func() { reg.RegisterComponent("k", nil) })
	assert.Panics(t, func() { reg.RegisterRunnable("k", nil) })
	assert.Panics(t, func() { New(nil) })
	assert.Empty(t, reg.AppKeys())
}

func TestUnmountDelegates(t *testing.T) {
	reg, rec := newTestRegistry(t)
	reg.RegisterComponent("x", text("x"))

	require.NoError(t, reg.UnmountApplicationAtRootTag(render.RootTag("root")))
	assert.Equal(t, []render.MountPoint{render.RootTag("root")}, rec.unmounted)
	assert.Equal(t, []string{"x"}, reg.AppKeys())
}

func TestRunLogsDiagnostic(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	dev := true
	reg := New(&recorder{},
		WithLogger(zap.New(core)),
		WithDevelopmentFlag(func() bool { return dev }),
	)
	reg.RegisterComponent("x", text("x"))

	props := render.Props{"foo": 1}
	require.NoError(t, reg.RunApplication("x", AppParams{RootTag: render.RootTag("root"), InitialProps: props}))
	dev = false
	_ = reg.RunApplication("missing", AppParams{RootTag: render.RootTag("root")})

	entries := logs.FilterMessage("running application").All()
	require.Len(t, entries, 2)

	f := entries[0].ContextMap()
	assert.Equal(t, "x", f["appKey"])
	assert.Equal(t, "#root", f["rootTag"])
	assert.Equal(t, "ON", f["developmentWarnings"])
	assert.Equal(t, "OFF", f["performanceOptimizations"])

	f = entries[1].ContextMap()
	assert.Equal(t, "missing", f["appKey"])
	assert.Equal(t, "OFF", f["developmentWarnings"])
	assert.Equal(t, "ON", f["performanceOptimizations"])
}

func TestEntriesMayReenter(t *testing.T) {
	reg, _ := newTestRegistry(t)
	reg.RegisterRunnable("outer", func(p AppParams) error {
		reg.RegisterComponent("inner", text("in"))
		return reg.RunApplication("inner", p)
	})
	require.NoError(t, reg.RunApplication("outer", AppParams{RootTag: render.RootTag("r")}))
	assert.Equal(t, []string{"outer", "inner"}, reg.AppKeys())
}
