// Package compress provides codec decorators that compress persisted
// notebook bytes.
//
// Zstd suits notebooks well: cell sources and outputs are text. LZ4 trades
// ratio for speed on very large notebooks.
//
//	codec := compress.Zstd(json.New())
package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/zoobzio/folio"
)

// Algorithm names accepted by ForName.
const (
	None     = "none"
	NameZstd = "zstd"
	NameLZ4  = "lz4"
)

// zstdEncoder and zstdDecoder are reused across calls; both are safe for
// concurrent use through EncodeAll and DecodeAll.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic("compress: zstd encoder initialization failed: " + err.Error())
	}

	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("compress: zstd decoder initialization failed: " + err.Error())
	}
}

// ForName wraps inner with the named algorithm. "none" and "" return inner
// unchanged.
func ForName(name string, inner folio.Codec) (folio.Codec, error) {
	switch name {
	case None, "":
		return inner, nil
	case NameZstd:
		return Zstd(inner), nil
	case NameLZ4:
		return LZ4(inner), nil
	default:
		return nil, fmt.Errorf("unknown compression algorithm: %q", name)
	}
}

// zstdCodec compresses the inner codec's output with zstd.
type zstdCodec struct {
	inner folio.Codec
}

// Zstd wraps a codec with zstd compression.
func Zstd(inner folio.Codec) folio.Codec {
	return &zstdCodec{inner: inner}
}

// ContentType returns the inner content type with a "+zstd" suffix.
func (c *zstdCodec) ContentType() string {
	return c.inner.ContentType() + "+zstd"
}

// Marshal encodes v with the inner codec and compresses the result.
func (c *zstdCodec) Marshal(v any) ([]byte, error) {
	data, err := c.inner.Marshal(v)
	if err != nil {
		return nil, err
	}
	return zstdEncoder.EncodeAll(data, nil), nil
}

// Unmarshal decompresses data and decodes it with the inner codec.
func (c *zstdCodec) Unmarshal(data []byte, v any) error {
	plain, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return fmt.Errorf("zstd decompress: %w", err)
	}
	return c.inner.Unmarshal(plain, v)
}

// lz4Codec compresses the inner codec's output as an LZ4 frame.
type lz4Codec struct {
	inner folio.Codec
}

// LZ4 wraps a codec with LZ4 frame compression.
func LZ4(inner folio.Codec) folio.Codec {
	return &lz4Codec{inner: inner}
}

// ContentType returns the inner content type with a "+lz4" suffix.
func (c *lz4Codec) ContentType() string {
	return c.inner.ContentType() + "+lz4"
}

// Marshal encodes v with the inner codec and compresses the result.
func (c *lz4Codec) Marshal(v any) ([]byte, error) {
	data, err := c.inner.Marshal(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decompresses data and decodes it with the inner codec.
func (c *lz4Codec) Unmarshal(data []byte, v any) error {
	plain, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("lz4 decompress: %w", err)
	}
	return c.inner.Unmarshal(plain, v)
}
