// Package json provides the JSON codec, the canonical notebook format.
package json

import (
	"bytes"
	"encoding/json"

	"github.com/zoobzio/folio"
)

// bom is the UTF-8 byte order mark some editors prepend to text files.
var bom = []byte{0xEF, 0xBB, 0xBF}

// jsonCodec implements folio.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() folio.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as compact JSON without escaping <, > and &, and
// without a trailing newline.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Unmarshal decodes JSON data into v. A leading byte order mark is ignored.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(bytes.TrimPrefix(data, bom), v)
}
