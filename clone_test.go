package folio

import "testing"

func TestNotebook_Clone(t *testing.T) {
	original := Notebook{Cells: []Cell{
		NewMarkupCell("# Title"),
		{
			Kind:     KindCode,
			Content:  "print(1)",
			Language: LanguagePython,
			Outputs:  []Output{{Items: []OutputItem{TextItem("1")}}},
		},
	}}

	clone := original.Clone()

	clone.Cells[0].Content = "changed"
	clone.Cells[1].Outputs[0].Items[0].Text = "changed"
	clone.Cells = append(clone.Cells, NewCodeCell("extra"))

	if original.Cells[0].Content != "# Title" {
		t.Errorf("original content modified: %q", original.Cells[0].Content)
	}
	if original.Cells[1].Outputs[0].Items[0].Text != "1" {
		t.Errorf("original output modified: %q", original.Cells[1].Outputs[0].Items[0].Text)
	}
	if len(original.Cells) != 2 {
		t.Errorf("len(original.Cells) = %d, want 2", len(original.Cells))
	}
}

func TestNotebook_CloneEmpty(t *testing.T) {
	clone := Notebook{}.Clone()
	if clone.Cells != nil {
		t.Errorf("Clone() of empty notebook = %v, want nil cells", clone.Cells)
	}
}

func TestCell_CloneKeepsNilOutputs(t *testing.T) {
	clone := NewCodeCell("x").Clone()
	if clone.Outputs != nil {
		t.Errorf("Outputs = %v, want nil", clone.Outputs)
	}
}

func TestCell_Items(t *testing.T) {
	cell := Cell{Outputs: []Output{
		{Items: []OutputItem{TextItem("a")}},
		{},
		{Items: []OutputItem{TextItem("b"), TextItem("c")}},
	}}

	items := cell.Items()
	if len(items) != 3 {
		t.Fatalf("len(Items()) = %d, want 3", len(items))
	}
	for i, want := range []string{"a", "b", "c"} {
		if items[i].Text != want {
			t.Errorf("Items()[%d].Text = %q, want %q", i, items[i].Text, want)
		}
	}
}

func TestNotebook_OutputCountNil(t *testing.T) {
	var nb *Notebook
	if nb.OutputCount() != 0 {
		t.Errorf("OutputCount() = %d, want 0", nb.OutputCount())
	}
}
