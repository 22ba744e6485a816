package folio_test

import (
	"context"
	"testing"

	"github.com/zoobzio/folio"
	"github.com/zoobzio/folio/json"
)

// snapshot copies any Cloner, as a host would before editing.
func snapshot[T folio.Cloner[T]](v T) T {
	return v.Clone()
}

func TestCloner_NotebookSnapshot(t *testing.T) {
	s, err := folio.NewSerializer(json.New())
	if err != nil {
		t.Fatalf("NewSerializer() error: %v", err)
	}

	input := `{"cells":[{"cell_type":"code","source":["x"],"outputs":[{"data":{"text/plain":["1"]}}]}]}`
	original := s.Decode(context.Background(), []byte(input))

	copied := snapshot(*original)
	copied.Cells[0].Content = "edited"
	copied.Cells[0].Outputs[0].Items[0].Text = "edited"

	if original.Cells[0].Content != "x" {
		t.Errorf("Content = %q, want %q", original.Cells[0].Content, "x")
	}
	if original.Cells[0].Items()[0].Text != "1" {
		t.Errorf("Items()[0].Text = %q, want %q", original.Cells[0].Items()[0].Text, "1")
	}
}

func TestCloner_CellSnapshot(t *testing.T) {
	original := folio.NewCodeCell("y")
	copied := snapshot(original)

	if copied.Kind != original.Kind || copied.Content != original.Content || copied.Language != original.Language {
		t.Errorf("Clone() = %+v, want %+v", copied, original)
	}
}
