package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Cell is a single scalar value in a table. Spreadsheet sources mark
// numeric cells so normalization can render them exactly; CSV sources
// produce text cells only.
type Cell struct {
	Text    string
	Number  decimal.Decimal // valid only when Numeric is true
	Numeric bool
}

// StringCell returns a text cell.
func StringCell(text string) Cell {
	return Cell{Text: text}
}

// NumberCell returns a numeric cell. The raw text rendering from the
// source file is kept alongside the parsed value.
func NumberCell(text string, value decimal.Decimal) Cell {
	return Cell{Text: text, Number: value, Numeric: true}
}

// IsEmpty reports whether the cell holds no usable value.
func (c Cell) IsEmpty() bool {
	return !c.Numeric && strings.TrimSpace(c.Text) == ""
}

// String returns the display rendering of the cell.
func (c Cell) String() string {
	if c.Numeric {
		return c.Number.String()
	}
	return c.Text
}

// Row is one record of a table, with cells aligned to Table.Columns.
type Row []Cell

// Clone returns a copy of the row that shares no storage with the original.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Table is an ordered set of rows sharing an ordered set of column names.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable creates an empty table with the given column names.
func NewTable(columns ...string) *Table {
	return &Table{Columns: columns}
}

// ColumnIndex returns the position of a column name, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Append adds a row, padding or truncating it to the column count.
func (t *Table) Append(row Row) {
	if len(row) < len(t.Columns) {
		padded := make(Row, len(t.Columns))
		copy(padded, row)
		row = padded
	} else if len(row) > len(t.Columns) {
		row = row[:len(t.Columns)]
	}
	t.Rows = append(t.Rows, row)
}

// Select returns a new table holding only the named columns, in the given
// order. Unknown names produce empty columns.
func (t *Table) Select(columns ...string) *Table {
	out := NewTable(columns...)
	indexes := make([]int, len(columns))
	for i, name := range columns {
		indexes[i] = t.ColumnIndex(name)
	}
	for _, row := range t.Rows {
		selected := make(Row, len(columns))
		for i, idx := range indexes {
			if idx >= 0 && idx < len(row) {
				selected[i] = row[idx]
			}
		}
		out.Rows = append(out.Rows, selected)
	}
	return out
}
