// Package jsonc provides a codec for hand-authored notebooks: JSON extended
// with // line comments, /* block comments */ and trailing commas.
//
// Comments do not survive a round trip. Marshal writes plain JSON, identical
// to the json codec's output.
package jsonc

import (
	"github.com/tidwall/jsonc"

	"github.com/zoobzio/folio"
	foliojson "github.com/zoobzio/folio/json"
)

// jsoncCodec implements folio.Codec for JSONC.
type jsoncCodec struct {
	plain folio.Codec
}

// New returns a JSONC codec.
func New() folio.Codec {
	return &jsoncCodec{plain: foliojson.New()}
}

// ContentType returns the MIME type for JSONC.
func (c *jsoncCodec) ContentType() string {
	return "application/jsonc"
}

// Marshal encodes v as plain JSON.
func (c *jsoncCodec) Marshal(v any) ([]byte, error) {
	return c.plain.Marshal(v)
}

// Unmarshal strips comments and trailing commas, then decodes JSON.
func (c *jsoncCodec) Unmarshal(data []byte, v any) error {
	return c.plain.Unmarshal(jsonc.ToJSON(data), v)
}
