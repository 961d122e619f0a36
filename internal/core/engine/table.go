package engine

import (
	"fmt"

	"github.com/redline-labs/redline-cli/internal/core/domain"
)

// TableCount returns the number of tables in the document.
func (e *Engine) TableCount() int {
	return len(e.tables)
}

// Table returns a copy of the table at index.
func (e *Engine) Table(index int) (domain.Table, error) {
	if err := e.checkTableIndex(index); err != nil {
		return domain.Table{}, err
	}
	return e.tables[index].Clone(), nil
}

// Tables returns copies of all tables in order.
func (e *Engine) Tables() []domain.Table {
	out := make([]domain.Table, len(e.tables))
	for i, t := range e.tables {
		out[i] = t.Clone()
	}
	return out
}

// AddTable appends a rows×cols table and returns the new table index.
// Optional data fills cells row-major; rows or columns beyond the grid
// are silently truncated. Dimensions outside [1, MaxTableRows] ×
// [1, MaxTableColumns] fail validation.
func (e *Engine) AddTable(rows, cols int, style *string, data [][]string) (int, error) {
	if rows < 1 || rows > domain.MaxTableRows {
		return 0, fmt.Errorf("%w: rows must be between 1 and %d", domain.ErrInvalidInput, domain.MaxTableRows)
	}
	if cols < 1 || cols > domain.MaxTableColumns {
		return 0, fmt.Errorf("%w: columns must be between 1 and %d", domain.ErrInvalidInput, domain.MaxTableColumns)
	}
	if style != nil {
		if _, ok := e.findStyle(*style); !ok {
			return 0, fmt.Errorf("%w: style %q", domain.ErrNotFound, *style)
		}
	}

	t := domain.Table{Style: style, Cells: emptyGrid(rows, cols)}
	for r, rowData := range data {
		if r >= rows {
			break
		}
		for c, text := range rowData {
			if c >= cols {
				break
			}
			t.Cells[r][c].Text = text
		}
	}

	e.tables = append(e.tables, t)
	e.reindexTables()
	return len(e.tables) - 1, nil
}

// DeleteTable removes the table at index; subsequent table indices
// shift back by one.
func (e *Engine) DeleteTable(index int) error {
	if err := e.checkTableIndex(index); err != nil {
		return err
	}
	e.tables = append(e.tables[:index], e.tables[index+1:]...)
	e.reindexTables()
	return nil
}

// Cell returns a copy of one table cell.
func (e *Engine) Cell(tableIndex, row, col int) (domain.Cell, error) {
	if err := e.checkTableIndex(tableIndex); err != nil {
		return domain.Cell{}, err
	}
	t := &e.tables[tableIndex]
	if err := checkCellIndices(t, row, col); err != nil {
		return domain.Cell{}, err
	}
	return t.Cells[row][col], nil
}

// SetCell sets one table cell's text and returns the updated cell.
func (e *Engine) SetCell(tableIndex, row, col int, text string) (domain.Cell, error) {
	if err := e.checkTableIndex(tableIndex); err != nil {
		return domain.Cell{}, err
	}
	t := &e.tables[tableIndex]
	if err := checkCellIndices(t, row, col); err != nil {
		return domain.Cell{}, err
	}
	t.Cells[row][col].Text = text
	return t.Cells[row][col], nil
}

// AddRow appends an empty row and returns the new row index.
func (e *Engine) AddRow(tableIndex int) (int, error) {
	if err := e.checkTableIndex(tableIndex); err != nil {
		return 0, err
	}
	t := &e.tables[tableIndex]
	if t.Rows() >= domain.MaxTableRows {
		return 0, fmt.Errorf("%w: maximum rows (%d) exceeded", domain.ErrInvalidInput, domain.MaxTableRows)
	}

	row := make([]domain.Cell, t.Cols())
	for c := range row {
		row[c] = domain.Cell{Row: t.Rows(), Col: c, ColSpan: 1, RowSpan: 1}
	}
	t.Cells = append(t.Cells, row)
	return t.Rows() - 1, nil
}

// AddColumn appends an empty column and returns the new column index.
func (e *Engine) AddColumn(tableIndex int) (int, error) {
	if err := e.checkTableIndex(tableIndex); err != nil {
		return 0, err
	}
	t := &e.tables[tableIndex]
	if t.Cols() >= domain.MaxTableColumns {
		return 0, fmt.Errorf("%w: maximum columns (%d) exceeded", domain.ErrInvalidInput, domain.MaxTableColumns)
	}

	col := t.Cols()
	for r := range t.Cells {
		t.Cells[r] = append(t.Cells[r], domain.Cell{Row: r, Col: col, ColSpan: 1, RowSpan: 1})
	}
	return col, nil
}

// DeleteRow removes a row, re-indexing the rows below it.
func (e *Engine) DeleteRow(tableIndex, rowIndex int) error {
	if err := e.checkTableIndex(tableIndex); err != nil {
		return err
	}
	t := &e.tables[tableIndex]
	if rowIndex < 0 || rowIndex >= t.Rows() {
		return fmt.Errorf("%w: row index %d (0-%d)", domain.ErrIndexOutOfRange, rowIndex, t.Rows()-1)
	}
	t.Cells = append(t.Cells[:rowIndex], t.Cells[rowIndex+1:]...)
	reindexGrid(t)
	return nil
}

// DeleteColumn removes a column, re-indexing the columns after it.
func (e *Engine) DeleteColumn(tableIndex, colIndex int) error {
	if err := e.checkTableIndex(tableIndex); err != nil {
		return err
	}
	t := &e.tables[tableIndex]
	if colIndex < 0 || colIndex >= t.Cols() {
		return fmt.Errorf("%w: column index %d (0-%d)", domain.ErrIndexOutOfRange, colIndex, t.Cols()-1)
	}
	for r := range t.Cells {
		t.Cells[r] = append(t.Cells[r][:colIndex], t.Cells[r][colIndex+1:]...)
	}
	reindexGrid(t)
	return nil
}

// MergeCells collapses the rectangular range (startRow, startCol) to
// (endRow, endCol) into one cell. The top-left cell becomes the anchor
// carrying the full span and keeps its text; the covered cells stay in
// the grid with zero spans and empty text. The range must be
// normalised (start ≤ end on both axes) or the table is left
// unchanged.
func (e *Engine) MergeCells(tableIndex, startRow, startCol, endRow, endCol int) error {
	if err := e.checkTableIndex(tableIndex); err != nil {
		return err
	}
	t := &e.tables[tableIndex]
	if err := checkCellIndices(t, startRow, startCol); err != nil {
		return err
	}
	if err := checkCellIndices(t, endRow, endCol); err != nil {
		return err
	}
	if startRow > endRow || startCol > endCol {
		return fmt.Errorf("%w: invalid cell range for merge", domain.ErrInvalidInput)
	}

	for r := startRow; r <= endRow; r++ {
		for c := startCol; c <= endCol; c++ {
			if r == startRow && c == startCol {
				continue
			}
			t.Cells[r][c].Text = ""
			t.Cells[r][c].ColSpan = 0
			t.Cells[r][c].RowSpan = 0
		}
	}
	t.Cells[startRow][startCol].RowSpan = endRow - startRow + 1
	t.Cells[startRow][startCol].ColSpan = endCol - startCol + 1
	return nil
}

// SetTableStyle applies a style name to a table.
func (e *Engine) SetTableStyle(tableIndex int, style string) error {
	if err := e.checkTableIndex(tableIndex); err != nil {
		return err
	}
	if _, ok := e.findStyle(style); !ok {
		return fmt.Errorf("%w: style %q", domain.ErrNotFound, style)
	}
	e.tables[tableIndex].Style = &style
	return nil
}

func (e *Engine) checkTableIndex(index int) error {
	if index < 0 || index >= len(e.tables) {
		return fmt.Errorf("%w: table index %d (0-%d)", domain.ErrIndexOutOfRange, index, len(e.tables)-1)
	}
	return nil
}

func checkCellIndices(t *domain.Table, row, col int) error {
	if row < 0 || row >= t.Rows() {
		return fmt.Errorf("%w: row index %d (0-%d)", domain.ErrIndexOutOfRange, row, t.Rows()-1)
	}
	if col < 0 || col >= t.Cols() {
		return fmt.Errorf("%w: column index %d (0-%d)", domain.ErrIndexOutOfRange, col, t.Cols()-1)
	}
	return nil
}

func emptyGrid(rows, cols int) [][]domain.Cell {
	grid := make([][]domain.Cell, rows)
	for r := range grid {
		grid[r] = make([]domain.Cell, cols)
		for c := range grid[r] {
			grid[r][c] = domain.Cell{Row: r, Col: c, ColSpan: 1, RowSpan: 1}
		}
	}
	return grid
}

func reindexGrid(t *domain.Table) {
	for r := range t.Cells {
		for c := range t.Cells[r] {
			t.Cells[r][c].Row = r
			t.Cells[r][c].Col = c
		}
	}
}
