package codec

import (
	"encoding/json"
	"testing"

	"github.com/joeydtaylor/steeze-apphost/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeProps(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		p, err := DecodeProps(JSONStrict, []byte("  "))
		require.NoError(t, err)
		assert.Equal(t, render.Props{}, p)
	})

	t.Run("props", func(t *testing.T) {
		p, err := DecodeProps(JSONStrict, []byte(`{"initialProps":{"foo":1,"name":"x"}}`))
		require.NoError(t, err)
		assert.Equal(t, json.Number("1"), p["foo"])
		assert.Equal(t, "x", p["name"])
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := DecodeProps(JSONStrict, []byte(`{"props":{}}`))
		assert.Error(t, err)
	})

	t.Run("trailing content", func(t *testing.T) {
		_, err := DecodeProps(JSONStrict, []byte(`{"initialProps":{}} {}`))
		assert.Error(t, err)
	})
}

func TestMarshalKeepsHTML(t *testing.T) {
	b, err := JSONStrict.Marshal(map[string]string{"m": "<b>"})
	require.NoError(t, err)
	assert.Equal(t, `{"m":"<b>"}`, string(b))
	assert.Equal(t, "application/json", JSONStrict.ContentType())
}
