package folio

// Clone implements Cloner[Notebook]. The copy shares no slices with n.
func (n Notebook) Clone() Notebook {
	if n.Cells == nil {
		return Notebook{}
	}
	cells := make([]Cell, len(n.Cells))
	for i, cell := range n.Cells {
		cells[i] = cell.Clone()
	}
	return Notebook{Cells: cells}
}

// Clone implements Cloner[Cell].
func (c Cell) Clone() Cell {
	clone := c
	if c.Outputs == nil {
		return clone
	}
	clone.Outputs = make([]Output, len(c.Outputs))
	for i, out := range c.Outputs {
		if out.Items != nil {
			items := make([]OutputItem, len(out.Items))
			copy(items, out.Items)
			out.Items = items
		}
		clone.Outputs[i] = out
	}
	return clone
}

var (
	_ Cloner[Notebook] = Notebook{}
	_ Cloner[Cell]     = Cell{}
)
