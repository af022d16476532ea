// Package source loads tabular datasets for binding: CSV files and SQLite
// query results, plus a file watcher for live reloads.
package source

// Row is one data row. Rows are bound by pointer, so every row has a stable
// identity even when two rows carry identical cell values.
type Row struct {
	Cells []string
}

// Cell returns the value at the given column index, or the empty string
// when the row is ragged.
func (r *Row) Cell(index int) string {
	if index < 0 || index >= len(r.Cells) {
		return ""
	}
	return r.Cells[index]
}

// Dataset is a loaded table: column names plus rows in load order.
type Dataset struct {
	Name    string
	Columns []string
	Rows    []*Row
}

// ColumnIndex returns the position of the named column, or -1 if the
// dataset has no such column.
func (d *Dataset) ColumnIndex(name string) int {
	for i, col := range d.Columns {
		if col == name {
			return i
		}
	}
	return -1
}
