package folio

import (
	"fmt"
	"strings"
)

// documentCells returns the cell list of a decoded tree. Only the top-level
// shape can fail: the tree must be a mapping whose "cells" key, when present,
// holds an array.
func documentCells(tree any) ([]any, error) {
	doc, ok := mapping(tree)
	if !ok {
		return nil, fmt.Errorf("%w: top level is %T, not a mapping", ErrDocumentShape, tree)
	}
	value := doc["cells"]
	if value == nil {
		return nil, nil
	}
	cells, ok := sequence(value)
	if !ok {
		return nil, fmt.Errorf("%w: cells is %T, not an array", ErrDocumentShape, value)
	}
	return cells, nil
}

// notebookFromTree builds a notebook in one pass over the decoded cells.
// Outputs are attached while each cell is built, so cells and outputs cannot
// drift apart by index.
func notebookFromTree(values []any) *Notebook {
	cells := make([]Cell, 0, len(values))
	for _, v := range values {
		cells = append(cells, cellFromValue(v))
	}
	return &Notebook{Cells: cells}
}

// cellFromValue maps one decoded cell. Every field falls back on its own:
// a cell_type that is not exactly "code" is markup, a source that is not an
// array of lines is read as text or left empty, and outputs that are not an
// array are ignored. The raw language and editable fields are not read.
func cellFromValue(v any) Cell {
	fields, _ := mapping(v)
	cellType, _ := fields["cell_type"].(string)
	kind := kindOf(cellType)
	cell := Cell{
		Kind:     kind,
		Content:  sourceText(fields["source"]),
		Language: languageOf(kind),
	}
	if outputs, ok := sequence(fields["outputs"]); ok && len(outputs) > 0 {
		cell.Outputs = outputsFromValues(outputs)
	}
	return cell
}

// sourceText joins source lines without a separator; lines carry their own
// terminators.
func sourceText(v any) string {
	if text, ok := v.(string); ok {
		return text
	}
	lines, ok := sequence(v)
	if !ok {
		return ""
	}
	return jsJoin(lines, "")
}

// outputsFromValues keeps one Output per raw output whose data is a
// non-empty mapping. Entries that are not mappings are dropped. Items come
// only from text/plain line arrays.
func outputsFromValues(values []any) []Output {
	outputs := make([]Output, 0, len(values))
	for _, v := range values {
		fields, ok := mapping(v)
		if !ok {
			continue
		}
		entries, ok := RawOutput{Data: fields["data"]}.Entries()
		if !ok || len(entries) == 0 {
			continue
		}
		var items []OutputItem
		for _, entry := range entries {
			lines, isText := entry.Value.(TextLines)
			if !isText {
				continue
			}
			for _, line := range lines {
				items = append(items, TextItem(line))
			}
		}
		outputs = append(outputs, Output{Items: items})
	}
	return outputs
}

// rawFromNotebook maps a notebook to its persisted shape. Outputs are never
// emitted. A nil notebook encodes as an empty cell list.
func rawFromNotebook(nb *Notebook) RawDocument {
	if nb == nil {
		return RawDocument{Cells: []RawCell{}}
	}
	cells := make([]RawCell, 0, len(nb.Cells))
	for _, cell := range nb.Cells {
		cells = append(cells, rawFromCell(cell))
	}
	return RawDocument{Cells: cells}
}

// rawFromCell splits content on '\n' literally; empty content yields [""].
func rawFromCell(cell Cell) RawCell {
	return RawCell{
		CellType: cellTypeOf(cell.Kind),
		Language: cell.Language,
		Source:   strings.Split(cell.Content, "\n"),
	}
}
