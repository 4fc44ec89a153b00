package render

import (
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate(t *testing.T) {
	tmpl := template.Must(template.New("page").Parse(`{{define "card"}}<div>{{.title}}</div>{{end}}`))

	t.Run("named template escapes props", func(t *testing.T) {
		out, err := Template(tmpl, "card").Render(Props{"title": "<x>"})
		require.NoError(t, err)
		assert.Equal(t, "<div>&lt;x&gt;</div>", out)
	})

	t.Run("unknown template", func(t *testing.T) {
		_, err := Template(tmpl, "missing").Render(nil)
		assert.Error(t, err)
	})

	t.Run("styles only when requested", func(t *testing.T) {
		assert.Empty(t, StylesOf(Template(tmpl, "card")))
		assert.Equal(t, "div{}", StylesOf(Template(tmpl, "card", WithStyles("div{}"))))
	})
}

func TestMarkup(t *testing.T) {
	tmpl := template.Must(template.New("x").Parse(`<p>{{.n}}</p>`))
	c := Template(tmpl, "", WithStyles("p > b {}</style>"))

	out, err := Markup(c, Props{"n": 1}, strings.ToUpper)
	require.NoError(t, err)
	assert.Equal(t, `<style data-apphost="">p > b {}<\/style></style><P>1</P>`, out)

	_, err = Markup(nil, nil)
	assert.Error(t, err)
}

func TestPropsCloneAndSelector(t *testing.T) {
	var nilProps Props
	assert.Equal(t, Props{}, nilProps.Clone())

	p := Props{"a": 1}
	c := p.Clone()
	c["a"] = 2
	assert.Equal(t, 1, p["a"])

	assert.Equal(t, "#root", Selector(RootTag("root")))
	assert.Equal(t, "", Selector(nil))
}
