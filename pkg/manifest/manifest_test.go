package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("normalizes pages", func(t *testing.T) {
		c := Config{Pages: []Page{
			{Path: "home/", App: " hello "},
			{Path: "/", App: "hello", RootID: "app"},
			{Path: "/admin", App: "status", Guard: Guard{Roles: []string{"admin"}}},
		}}
		require.NoError(t, c.Validate())

		assert.Equal(t, "/home", c.Pages[0].Path)
		assert.Equal(t, "hello", c.Pages[0].App)
		assert.Equal(t, DefaultRootID, c.Pages[0].RootID)
		assert.Equal(t, "/", c.Pages[1].Path)
		assert.Equal(t, "app", c.Pages[1].RootID)
		assert.True(t, c.Pages[2].Guard.Restricted())
		assert.Equal(t, []string{"hello", "status"}, c.Apps())
	})

	cases := map[string]Config{
		"no pages":     {},
		"missing path": {Pages: []Page{{App: "a"}}},
		"missing app":  {Pages: []Page{{Path: "/"}}},
		"duplicate":    {Pages: []Page{{Path: "/x", App: "a"}, {Path: "x/", App: "b"}}},
		"builtin":      {Pages: []Page{{Path: "/apps/x", App: "a"}}},
		"bad timeout":  {Pages: []Page{{Path: "/", App: "a", TimeoutMS: -1}}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, c.Validate())
		})
	}
}
