// Package folio converts notebook documents between their persisted form and
// an in-memory cell model.
//
// A notebook is persisted as an ordered list of raw cells:
//
//	{
//	  "cells": [
//	    {
//	      "cell_type": "code",
//	      "language": "python",
//	      "source": ["print(1)"],
//	      "outputs": [{"data": {"text/plain": ["1"]}}]
//	    }
//	  ]
//	}
//
// A Serializer maps those bytes to a Notebook of typed cells on load and back
// to bytes on save. The wire format is pluggable through the Codec interface.
//
// # Boundaries
//
// Serializer operates on the two boundary crossings a notebook host makes:
//
//   - decode: bytes from storage become a Notebook the editor can render
//   - encode: a Notebook becomes bytes the host writes back to storage
//
// Decode is fail-soft. Malformed input never blocks the host from opening a
// file: it yields an empty notebook, and the swallowed error is reported on
// SignalDecodeFallback. DecodeStrict exposes the same mapping with an error
// channel for tooling that must tell "empty" from "corrupt".
//
// Encode is lossy for outputs by contract. Outputs are execution results, not
// editable source, so encode emits only cell_type, language and source.
//
// # Basic Usage
//
//	s, _ := folio.NewSerializer(json.New())
//
//	nb := s.Decode(ctx, data)
//	for _, cell := range nb.Cells {
//	    fmt.Println(cell.Kind, cell.Language, cell.Content)
//	}
//
//	data, err := s.Encode(ctx, nb)
//
// # Codec Providers
//
// The following codec implementations are available as subpackages:
//
//   - json - JSON encoding (application/json), the canonical on-disk format
//   - jsonc - JSON with comments and trailing commas (application/jsonc)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//   - cbor - deterministic CBOR encoding (application/cbor)
//
// Codecs compose with decorators:
//
//	codec := folio.Seal(compress.Zstd(json.New()), enc)
//
// # Sealing
//
// Built-in encryptors for Seal:
//
//   - AES(key) - AES-GCM symmetric encryption
//   - Passphrase(secret) - AES-GCM with an Argon2id key derived per message
package folio

// Cloner allows types to provide deep copy logic.
//
// The Clone method must return a deep copy where modifications to the clone
// do not affect the original value. Notebook and Cell implement it so hosts
// can snapshot a document before handing it to an editor.
type Cloner[T any] interface {
	Clone() T
}
