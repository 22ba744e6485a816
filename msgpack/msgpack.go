// Package msgpack provides a MessagePack codec implementation.
//
// Notebooks are written as a compact binary rendition of folio.RawDocument,
// with field names taken from the raw types' msgpack tags. Output data maps
// decode with string keys, so payloads classify the same way they do for JSON.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/zoobzio/folio"
)

// msgpackCodec implements folio.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() folio.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
