// Package yaml provides a YAML codec implementation.
//
// Notebooks are written as a readable rendition of folio.RawDocument: a
// top-level cells sequence whose entries carry cell_type, source as a list of
// lines, and outputs with a data mapping keyed by MIME type. Field names come
// from the raw types' yaml tags. Decoded mappings arrive as map[string]any, so
// output payloads classify the same way they do for JSON.
package yaml

import (
	"gopkg.in/yaml.v3"

	"github.com/zoobzio/folio"
)

// yamlCodec implements folio.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() folio.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
