package table

import (
	"tabstat/domain/core"
)

// CellFunc rewrites a single cell
type CellFunc func(Cell) (Cell, error)

// RemoveColumns returns a new table without the named columns together with
// the names that were actually removed. Names absent from t are ignored.
// The remaining columns keep their original order and t is left untouched.
func RemoveColumns(t *Table, names []string) (*Table, []string) {
	drop := make(map[string]bool, len(names))
	removed := make([]string, 0, len(names))
	for _, name := range names {
		if !t.Has(name) || drop[name] {
			continue
		}
		drop[name] = true
		removed = append(removed, name)
	}

	kept := make([]Column, 0, t.Width()-len(removed))
	for _, col := range t.columns {
		if !drop[col.Name] {
			kept = append(kept, col)
		}
	}

	// kept comes from a valid table, so New cannot fail
	result, _ := New(kept...)
	return result, removed
}

// MapColumn returns a new table whose named column has every cell rewritten
// by fn. The boolean is false, and t is returned as a copy, when the column
// does not exist. The first error from fn aborts the transformation; rows in
// the error are 1-based data rows.
func MapColumn(t *Table, name string, fn CellFunc) (*Table, bool, error) {
	i, ok := t.index[name]
	if !ok {
		return t.Clone(), false, nil
	}

	columns := t.Columns()
	cells := columns[i].Cells
	for row, cell := range cells {
		mapped, err := fn(cell)
		if err != nil {
			return nil, true, core.NewCellError(name, row+1, err)
		}
		cells[row] = mapped
	}

	result, err := New(columns...)
	if err != nil {
		return nil, true, err
	}
	return result, true, nil
}
