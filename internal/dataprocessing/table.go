package dataprocessing

import "strings"

// RawTable holds a parsed report as it came off the upload: a header row of
// column names plus untyped data rows. Column names are trimmed at load time
// so padded headers never cause a false miss during resolution.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of the named column, or -1.
func (t *RawTable) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at (row, col), treating cells beyond a ragged row's
// width as empty.
func (t *RawTable) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// isBlank reports whether a cell holds no usable value.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
