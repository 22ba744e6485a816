package folio

import (
	"context"
	"time"
)

// Serializer converts between persisted notebook bytes and Notebook values.
//
// Serializers hold no per-call state and are safe for concurrent use. Decode
// and Encode run synchronously to completion; a context is accepted for
// signal propagation and is only checked before work starts.
type Serializer struct {
	codec Codec
}

// NewSerializer creates a Serializer over the given wire codec.
//
// The raw schema is validated on first construction; a mismatch between the
// formats' struct tags is returned as a SchemaError.
func NewSerializer(codec Codec) (*Serializer, error) {
	if _, err := Schema(); err != nil {
		return nil, err
	}

	s := &Serializer{codec: codec}
	emitSerializerCreated(context.Background(), codec.ContentType())
	return s, nil
}

// ContentType returns the content type of the underlying codec.
func (s *Serializer) ContentType() string {
	return s.codec.ContentType()
}

// Decode converts persisted bytes into a Notebook.
//
// Decode never fails. Input that cannot be parsed, including empty input and
// a wrong top-level shape, yields a notebook with zero cells; the parse
// error is emitted on SignalDecodeFallback. A badly typed cell or output
// never discards its neighbours: each field falls back on its own (a
// cell_type other than "code" is markup, outputs that are not an array or
// entries that are not mappings are dropped).
func (s *Serializer) Decode(ctx context.Context, data []byte) *Notebook {
	contentType := s.codec.ContentType()
	start := time.Now()
	emitDecodeStart(ctx, contentType, len(data))

	cells, err := s.unmarshal(data)
	if err != nil {
		emitDecodeFallback(ctx, contentType, len(data), err)
		cells = nil
	}

	nb := notebookFromTree(cells)
	emitDecodeComplete(ctx, contentType, len(nb.Cells), nb.OutputCount(), time.Since(start), nil)
	return nb
}

// DecodeStrict is Decode with an error channel. Parse failures are returned
// as a CodecError wrapping ErrUnmarshal instead of an empty notebook, and a
// context cancelled before the call returns its error.
func (s *Serializer) DecodeStrict(ctx context.Context, data []byte) (*Notebook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	contentType := s.codec.ContentType()
	start := time.Now()
	emitDecodeStart(ctx, contentType, len(data))

	cells, err := s.unmarshal(data)
	if err != nil {
		emitDecodeComplete(ctx, contentType, 0, 0, time.Since(start), err)
		return nil, err
	}

	nb := notebookFromTree(cells)
	emitDecodeComplete(ctx, contentType, len(nb.Cells), nb.OutputCount(), time.Since(start), nil)
	return nb, nil
}

// Encode converts a Notebook into persisted bytes.
//
// Each cell is written as cell_type, language and source. Outputs are never
// written. A nil notebook encodes as an empty cell list. A context cancelled
// before the call returns its error and encodes nothing.
func (s *Serializer) Encode(ctx context.Context, nb *Notebook) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := rawFromNotebook(nb)
	contentType := s.codec.ContentType()
	start := time.Now()
	emitEncodeStart(ctx, contentType, len(raw.Cells))

	var retErr error
	var retData []byte
	defer func() {
		emitEncodeComplete(ctx, contentType, len(raw.Cells), len(retData), time.Since(start), retErr)
	}()

	data, err := s.codec.Marshal(&raw)
	if err != nil {
		retErr = newCodecError(ErrMarshal, err)
		return nil, retErr
	}

	retData = data
	return retData, nil
}

// unmarshal parses data into an untyped tree and returns its cells. Cells
// stay untyped so each one can fall back on its own.
func (s *Serializer) unmarshal(data []byte) ([]any, error) {
	var tree any
	if err := s.codec.Unmarshal(data, &tree); err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	cells, err := documentCells(tree)
	if err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	return cells, nil
}
