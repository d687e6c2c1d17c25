package table

import (
	"fmt"

	"tabstat/domain/core"
)

// Cell is a nullable text value. nil means the cell is empty.
type Cell = *string

// Column is a named, ordered sequence of cells
type Column struct {
	Name  string
	Cells []Cell
}

// Table is an ordered collection of equal-length named columns
type Table struct {
	columns []Column
	index   map[string]int
}

// NewCell returns a cell holding s
func NewCell(s string) Cell {
	return &s
}

// Text returns the cell value, or "" for a nil cell
func Text(c Cell) string {
	if c == nil {
		return ""
	}
	return *c
}

// New builds a table from columns. Columns must have distinct names and
// equal lengths; cells are copied so later changes to the arguments do not
// leak into the table.
func New(columns ...Column) (*Table, error) {
	t := &Table{
		columns: make([]Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}

	for i, col := range columns {
		if _, exists := t.index[col.Name]; exists {
			return nil, fmt.Errorf("%w: %q", core.ErrDuplicateColumn, col.Name)
		}
		if i > 0 && len(col.Cells) != len(columns[0].Cells) {
			return nil, fmt.Errorf("%w: %q has %d cells, %q has %d",
				core.ErrRaggedColumns, col.Name, len(col.Cells), columns[0].Name, len(columns[0].Cells))
		}
		t.index[col.Name] = len(t.columns)
		t.columns = append(t.columns, copyColumn(col))
	}

	return t, nil
}

// FromRows builds a table from a header row and data rows. Short rows are
// padded with nil cells, extra trailing cells are dropped and empty strings
// become nil cells.
func FromRows(headers []string, rows [][]string) (*Table, error) {
	columns := make([]Column, len(headers))
	for j, header := range headers {
		columns[j] = Column{Name: header, Cells: make([]Cell, len(rows))}
	}

	for i, row := range rows {
		for j := range headers {
			if j < len(row) && row[j] != "" {
				columns[j].Cells[i] = NewCell(row[j])
			}
		}
	}

	return New(columns...)
}

// Names returns the column names in order
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}
	return names
}

// Len returns the number of rows
func (t *Table) Len() int {
	if len(t.columns) == 0 {
		return 0
	}
	return len(t.columns[0].Cells)
}

// Width returns the number of columns
func (t *Table) Width() int {
	return len(t.columns)
}

// Has reports whether a column with the exact name exists
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns a copy of the named column. Lookup is case-sensitive.
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return copyColumn(t.columns[i]), true
}

// Row returns the cells of row i in column order
func (t *Table) Row(i int) []Cell {
	row := make([]Cell, len(t.columns))
	for j, col := range t.columns {
		row[j] = copyCell(col.Cells[i])
	}
	return row
}

// Rows returns every row as text, nil cells rendered as ""
func (t *Table) Rows() [][]string {
	rows := make([][]string, t.Len())
	for i := range rows {
		row := make([]string, len(t.columns))
		for j, col := range t.columns {
			row[j] = Text(col.Cells[i])
		}
		rows[i] = row
	}
	return rows
}

// Columns returns a deep copy of all columns
func (t *Table) Columns() []Column {
	columns := make([]Column, len(t.columns))
	for i, col := range t.columns {
		columns[i] = copyColumn(col)
	}
	return columns
}

// Clone returns a deep copy of the table
func (t *Table) Clone() *Table {
	clone, _ := New(t.columns...)
	return clone
}

func copyColumn(col Column) Column {
	cells := make([]Cell, len(col.Cells))
	for i, c := range col.Cells {
		cells[i] = copyCell(c)
	}
	return Column{Name: col.Name, Cells: cells}
}

func copyCell(c Cell) Cell {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}
