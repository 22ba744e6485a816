// Package cbor provides a deterministic CBOR codec implementation.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2), so the same
// notebook always produces identical bytes. Field names come from the raw
// types' json tags.
package cbor

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/zoobzio/folio"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cbor: encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Output payloads decode into untyped values; string-keyed maps keep
		// them compatible with the other formats.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("cbor: decoder initialization failed: " + err.Error())
	}
}

// cborCodec implements folio.Codec for CBOR.
type cborCodec struct{}

// New returns a CBOR codec.
func New() folio.Codec {
	return &cborCodec{}
}

// ContentType returns the MIME type for CBOR.
func (c *cborCodec) ContentType() string {
	return "application/cbor"
}

// Marshal encodes v as deterministic CBOR.
func (c *cborCodec) Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func (c *cborCodec) Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}
