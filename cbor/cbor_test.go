package cbor

import (
	"bytes"
	"testing"

	"github.com/zoobzio/folio"
)

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/cbor" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/cbor")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	original := folio.RawDocument{Cells: []folio.RawCell{{
		CellType: folio.CellTypeCode,
		Language: "python",
		Source:   []string{"1 + 1"},
		Outputs: []folio.RawOutput{{
			Data: map[string]any{
				"text/plain": []string{"2"},
				"text/html":  "<b>2</b>",
			},
		}},
	}}}

	data, err := c.Marshal(&original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored folio.RawDocument
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	entries, ok := restored.Cells[0].Outputs[0].Entries()
	if !ok || len(entries) != 2 {
		t.Fatalf("Entries() = %v, %v; want two entries", entries, ok)
	}
	lines, isText := entries[1].Value.(folio.TextLines)
	if !isText || len(lines) != 1 || lines[0] != "2" {
		t.Errorf("text/plain = %#v, want TextLines{\"2\"}", entries[1].Value)
	}
}

func TestMarshal_Deterministic(t *testing.T) {
	c := New()

	doc := folio.RawDocument{Cells: []folio.RawCell{{
		CellType: folio.CellTypeCode,
		Source:   []string{"x"},
		Outputs: []folio.RawOutput{{
			Data: map[string]any{"b": 1, "a": 2, "text/plain": []string{"x"}},
		}},
	}}}

	first, err := c.Marshal(&doc)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := c.Marshal(&doc)
		if err != nil {
			t.Fatalf("Marshal() error: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatal("Marshal() should produce identical bytes for identical input")
		}
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v folio.RawDocument
	if err := c.Unmarshal([]byte("not cbor"), &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
