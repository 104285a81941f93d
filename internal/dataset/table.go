// Package dataset provides the in-memory tabular model shared by every
// pipeline stage: an ordered-column table of string cells with explicit
// missing-value semantics, plus CSV and Excel input/output.
package dataset

// Row is one record mapping canonical column name to cell text.
// A missing cell is an absent key; stages never store empty strings to mean
// missing.
type Row map[string]string

// Get returns the cell value and whether it is present.
func (r Row) Get(col string) (string, bool) {
	v, ok := r[col]
	return v, ok
}

// Value returns the cell value, or the empty string when missing.
func (r Row) Value(col string) string {
	return r[col]
}

// Has reports whether the cell is present.
func (r Row) Has(col string) bool {
	_, ok := r[col]
	return ok
}

// Set stores a cell value.
func (r Row) Set(col, val string) {
	r[col] = val
}

// Delete marks the cell as missing.
func (r Row) Delete(col string) {
	delete(r, col)
}

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an ordered-column collection of rows. Column order is the order
// cells appear in persisted artifacts; rows may carry cells for any subset of
// the declared columns.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given column order.
func New(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the named column is declared.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn declares a column at the end of the order if not already present.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// DropColumn removes a column from the order and from every row.
func (t *Table) DropColumn(name string) {
	cols := t.Columns[:0]
	for _, c := range t.Columns {
		if c != name {
			cols = append(cols, c)
		}
	}
	t.Columns = cols
	for _, row := range t.Rows {
		row.Delete(name)
	}
}

// RenameColumn renames a column in place, preserving its position and every
// row's value unchanged. A no-op when the old name is not declared.
func (t *Table) RenameColumn(oldName, newName string) {
	if oldName == newName {
		return
	}
	for i, c := range t.Columns {
		if c == oldName {
			t.Columns[i] = newName
			for _, row := range t.Rows {
				if v, ok := row.Get(oldName); ok {
					row.Delete(oldName)
					row.Set(newName, v)
				}
			}
			return
		}
	}
}

// Append adds a row to the table.
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

// Filter returns a fresh table containing clones of the rows the predicate
// keeps. The receiver is not modified.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := New(t.Columns...)
	for _, row := range t.Rows {
		if keep(row) {
			out.Append(row.Clone())
		}
	}
	return out
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := New(t.Columns...)
	for _, row := range t.Rows {
		out.Append(row.Clone())
	}
	return out
}

// ColumnValues returns the present (non-missing) values of a column in row
// order.
func (t *Table) ColumnValues(name string) []string {
	var out []string
	for _, row := range t.Rows {
		if v, ok := row.Get(name); ok {
			out = append(out, v)
		}
	}
	return out
}

// Reorder rearranges the column order so the preferred columns that exist
// come first in their given order, followed by all remaining columns in
// their current relative order. No cell values change.
func (t *Table) Reorder(preferred []string) {
	seen := make(map[string]bool, len(t.Columns))
	var cols []string
	for _, c := range preferred {
		if t.HasColumn(c) && !seen[c] {
			cols = append(cols, c)
			seen[c] = true
		}
	}
	for _, c := range t.Columns {
		if !seen[c] {
			cols = append(cols, c)
			seen[c] = true
		}
	}
	t.Columns = cols
}
