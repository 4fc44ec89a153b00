// pkg/codec/jsoncodec.go
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/joeydtaylor/steeze-apphost/pkg/render"
)

type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	ContentType() string
}

type jsonStrict struct{}

var JSONStrict Codec = jsonStrict{}

func (jsonStrict) Marshal(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (jsonStrict) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("json decode: %w", err)
	}
	// Probe for trailing data (must be EOF)
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return fmt.Errorf("json trailing content")
	}
	return nil
}

func (jsonStrict) ContentType() string { return "application/json" }

// PropsRequest is the body accepted by prerender endpoints.
type PropsRequest struct {
	InitialProps render.Props `json:"initialProps"`
}

// DecodeProps reads initial props from a request body. An empty body means
// no props.
func DecodeProps(c Codec, data []byte) (render.Props, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return render.Props{}, nil
	}
	var req PropsRequest
	if err := c.Unmarshal(data, &req); err != nil {
		return nil, err
	}
	if req.InitialProps == nil {
		return render.Props{}, nil
	}
	return req.InitialProps, nil
}
