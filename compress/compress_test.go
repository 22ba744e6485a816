package compress

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/folio"
	"github.com/zoobzio/folio/json"
)

func sampleDocument() *folio.RawDocument {
	source := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		source = append(source, "print('the same line over and over')")
	}
	return &folio.RawDocument{Cells: []folio.RawCell{{
		CellType: folio.CellTypeCode,
		Language: "python",
		Source:   source,
	}}}
}

func TestContentType(t *testing.T) {
	testCases := []struct {
		codec folio.Codec
		want  string
	}{
		{Zstd(json.New()), "application/json+zstd"},
		{LZ4(json.New()), "application/json+lz4"},
	}

	for _, tc := range testCases {
		if got := tc.codec.ContentType(); got != tc.want {
			t.Errorf("ContentType() = %q, want %q", got, tc.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{NameZstd, NameLZ4} {
		t.Run(name, func(t *testing.T) {
			c, err := ForName(name, json.New())
			if err != nil {
				t.Fatalf("ForName(%q) error: %v", name, err)
			}

			original := sampleDocument()
			data, err := c.Marshal(original)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}

			plain, _ := json.New().Marshal(original)
			if len(data) >= len(plain) {
				t.Errorf("compressed size %d should be below plain size %d", len(data), len(plain))
			}

			var restored folio.RawDocument
			if err := c.Unmarshal(data, &restored); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			if len(restored.Cells) != 1 || len(restored.Cells[0].Source) != 200 {
				t.Errorf("round-trip failed: got %d cells", len(restored.Cells))
			}
		})
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	for _, name := range []string{NameZstd, NameLZ4} {
		t.Run(name, func(t *testing.T) {
			c, _ := ForName(name, json.New())

			var v folio.RawDocument
			err := c.Unmarshal([]byte(`{"cells":[]}`), &v)
			if err == nil {
				t.Error("Unmarshal(uncompressed) should return error")
			}
			if err != nil && !strings.Contains(err.Error(), name) {
				t.Errorf("error %q should name the algorithm", err)
			}
		})
	}
}

func TestForName(t *testing.T) {
	inner := json.New()

	for _, name := range []string{"", None} {
		c, err := ForName(name, inner)
		if err != nil {
			t.Fatalf("ForName(%q) error: %v", name, err)
		}
		if c != inner {
			t.Errorf("ForName(%q) should return the inner codec", name)
		}
	}

	if _, err := ForName("brotli", inner); err == nil {
		t.Error("ForName(unknown) should return error")
	}
}

type failingCodec struct{}

var errBoom = errors.New("boom")

func (failingCodec) ContentType() string { return "application/x-failing" }

func (failingCodec) Marshal(any) ([]byte, error) { return nil, errBoom }

func (failingCodec) Unmarshal([]byte, any) error { return nil }

func TestMarshal_InnerError(t *testing.T) {
	for _, c := range []folio.Codec{Zstd(failingCodec{}), LZ4(failingCodec{})} {
		if _, err := c.Marshal(struct{}{}); !errors.Is(err, errBoom) {
			t.Errorf("Marshal() error = %v, want %v", err, errBoom)
		}
	}
}

func TestZstd_SharedAcrossCodecs(t *testing.T) {
	a, b := Zstd(json.New()), Zstd(json.New())
	doc := sampleDocument()

	first, err := a.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	second, err := b.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("zstd output should not depend on codec instance")
	}
}
