// Package tabular provides an ordered-column table abstraction for raw and
// cleaned export data.
package tabular

import (
	"errors"
	"fmt"
)

// Frame manipulation errors.
var (
	ErrColumnExists         = errors.New("column already exists")
	ErrColumnNotFound       = errors.New("column not found")
	ErrColumnLengthMismatch = errors.New("column length does not match row count")
	ErrRowLengthMismatch    = errors.New("row length does not match column count")
)

// Frame is an in-memory table with an ordered header row and string cells.
// An empty cell represents a missing value.
type Frame struct {
	Headers []string
	Rows    [][]string
}

// NewFrame creates an empty frame with the given headers.
func NewFrame(headers []string) *Frame {
	h := make([]string, len(headers))
	copy(h, headers)

	return &Frame{Headers: h}
}

// RowCount returns the number of data rows.
func (f *Frame) RowCount() int {
	return len(f.Rows)
}

// ColumnCount returns the number of columns.
func (f *Frame) ColumnCount() int {
	return len(f.Headers)
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (f *Frame) ColumnIndex(name string) int {
	for i, h := range f.Headers {
		if h == name {
			return i
		}
	}

	return -1
}

// HasColumn reports whether the named column exists.
func (f *Frame) HasColumn(name string) bool {
	return f.ColumnIndex(name) >= 0
}

// Column returns a copy of the named column's values, or nil if absent.
func (f *Frame) Column(name string) []string {
	idx := f.ColumnIndex(name)
	if idx < 0 {
		return nil
	}

	values := make([]string, len(f.Rows))
	for i, row := range f.Rows {
		values[i] = row[idx]
	}

	return values
}

// Cell returns the value at the given row in the named column.
// Returns an empty string if the column is absent.
func (f *Frame) Cell(row int, name string) string {
	idx := f.ColumnIndex(name)
	if idx < 0 || row < 0 || row >= len(f.Rows) {
		return ""
	}

	return f.Rows[row][idx]
}

// SetColumn replaces the values of an existing column in place.
func (f *Frame) SetColumn(name string, values []string) error {
	idx := f.ColumnIndex(name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrColumnNotFound, name)
	}

	if len(values) != len(f.Rows) {
		return fmt.Errorf("%w: %s", ErrColumnLengthMismatch, name)
	}

	for i := range f.Rows {
		f.Rows[i][idx] = values[i]
	}

	return nil
}

// AddColumn appends a new column with the given values.
func (f *Frame) AddColumn(name string, values []string) error {
	if f.HasColumn(name) {
		return fmt.Errorf("%w: %s", ErrColumnExists, name)
	}

	if len(values) != len(f.Rows) {
		return fmt.Errorf("%w: %s", ErrColumnLengthMismatch, name)
	}

	f.Headers = append(f.Headers, name)
	for i := range f.Rows {
		f.Rows[i] = append(f.Rows[i], values[i])
	}

	return nil
}

// AddConstColumn appends a new column holding the same value in every row.
func (f *Frame) AddConstColumn(name, value string) error {
	values := make([]string, len(f.Rows))
	for i := range values {
		values[i] = value
	}

	return f.AddColumn(name, values)
}

// DropColumn removes the named column. Returns false if it was absent.
func (f *Frame) DropColumn(name string) bool {
	idx := f.ColumnIndex(name)
	if idx < 0 {
		return false
	}

	f.Headers = append(f.Headers[:idx], f.Headers[idx+1:]...)
	for i, row := range f.Rows {
		f.Rows[i] = append(row[:idx], row[idx+1:]...)
	}

	return true
}

// AppendRow adds a data row to the frame.
func (f *Frame) AppendRow(row []string) error {
	if len(row) != len(f.Headers) {
		return fmt.Errorf("%w: got %d cells, want %d", ErrRowLengthMismatch, len(row), len(f.Headers))
	}

	r := make([]string, len(row))
	copy(r, row)
	f.Rows = append(f.Rows, r)

	return nil
}

// ColumnsWhere returns the names of all columns whose header satisfies the
// predicate, in header order.
func (f *Frame) ColumnsWhere(pred func(string) bool) []string {
	var matched []string

	for _, h := range f.Headers {
		if pred(h) {
			matched = append(matched, h)
		}
	}

	return matched
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	clone := NewFrame(f.Headers)
	clone.Rows = make([][]string, len(f.Rows))

	for i, row := range f.Rows {
		r := make([]string, len(row))
		copy(r, row)
		clone.Rows[i] = r
	}

	return clone
}
