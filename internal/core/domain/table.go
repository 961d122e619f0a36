package domain

// Table dimension limits, matching the OOXML grid caps.
const (
	MaxTableRows    = 32767
	MaxTableColumns = 63
)

// Cell is a single table cell. A merged region keeps its top-left cell
// as the anchor, carrying the full span; the covered cells remain in
// the grid with both spans set to zero.
type Cell struct {
	// Row and Col are the cell's 0-based grid coordinates.
	Row int `json:"row"`
	Col int `json:"col"`

	// Text is the cell's text content.
	Text string `json:"text"`

	// ColSpan and RowSpan are the merge spans. Both are 1 for an
	// ordinary cell and 0 for a cell covered by a merge anchor.
	ColSpan int `json:"colspan"`
	RowSpan int `json:"rowspan"`
}

// Covered reports whether the cell is swallowed by a merge anchor.
func (c Cell) Covered() bool {
	return c.ColSpan == 0 && c.RowSpan == 0
}

// Table is a rectangular grid of cells, addressed by a 0-based index
// parallel to the paragraph index space.
type Table struct {
	// Index is the table's current position among the document's tables.
	Index int `json:"index"`

	// Style is a table style name reference, if set.
	Style *string `json:"style,omitempty"`

	// Cells is the row-major grid. Every row has the same length.
	Cells [][]Cell `json:"cells"`
}

// Rows returns the number of rows in the grid.
func (t Table) Rows() int {
	return len(t.Cells)
}

// Cols returns the number of columns in the grid.
func (t Table) Cols() int {
	if len(t.Cells) == 0 {
		return 0
	}
	return len(t.Cells[0])
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	out := t
	out.Style = cloneString(t.Style)
	out.Cells = make([][]Cell, len(t.Cells))
	for i, row := range t.Cells {
		out.Cells[i] = make([]Cell, len(row))
		copy(out.Cells[i], row)
	}
	return out
}
