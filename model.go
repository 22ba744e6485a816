package folio

// Notebook is the in-memory notebook document: an ordered list of cells.
type Notebook struct {
	Cells []Cell
}

// Cell is one unit of a notebook.
type Cell struct {
	Kind CellKind

	// Content is the full cell text.
	Content string

	// Language is the cell's language tag. Decode fixes it by kind; encode
	// writes whatever the host has set.
	Language string

	// Outputs holds one entry per raw output that carried a data mapping.
	// Nil when the raw cell had no outputs.
	Outputs []Output
}

// Output is the set of items extracted from one raw output.
type Output struct {
	Items []OutputItem
}

// OutputItem is one rendered line of execution result text.
type OutputItem struct {
	MIME string
	Text string
}

// TextItem returns a text/plain output item.
func TextItem(text string) OutputItem {
	return OutputItem{MIME: MIMETextPlain, Text: text}
}

// NewCodeCell returns a code cell tagged python.
func NewCodeCell(content string) Cell {
	return Cell{Kind: KindCode, Content: content, Language: LanguagePython}
}

// NewMarkupCell returns a markup cell tagged markdown.
func NewMarkupCell(content string) Cell {
	return Cell{Kind: KindMarkup, Content: content, Language: LanguageMarkdown}
}

// Items returns every output item of the cell in order, flattened across
// outputs.
func (c Cell) Items() []OutputItem {
	var items []OutputItem
	for _, out := range c.Outputs {
		items = append(items, out.Items...)
	}
	return items
}

// OutputCount returns the total number of output items in the notebook.
func (n *Notebook) OutputCount() int {
	if n == nil {
		return 0
	}
	count := 0
	for _, cell := range n.Cells {
		for _, out := range cell.Outputs {
			count += len(out.Items)
		}
	}
	return count
}
