package dataframe

import (
	"math"
	"strconv"
	"strings"
)

// Table is an in-memory tabular structure: an ordered set of named columns
// over string-valued rows, as loaded from a workbook sheet. Columns are
// optional by design; every consumer checks presence before use.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// New creates an empty table with the given column names. Duplicate column
// names keep the first occurrence's index.
func New(columns []string) *Table {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}
	return &Table{
		columns: append([]string{}, columns...),
		index:   index,
	}
}

// Columns returns the ordered column names
func (t *Table) Columns() []string {
	return append([]string{}, t.columns...)
}

// NumRows returns the number of data rows
func (t *Table) NumRows() int {
	return len(t.rows)
}

// NumCols returns the number of columns
func (t *Table) NumCols() int {
	return len(t.columns)
}

// Append adds a row, padding or truncating it to the column count
func (t *Table) Append(row []string) {
	fixed := make([]string, len(t.columns))
	copy(fixed, row)
	t.rows = append(t.rows, fixed)
}

// Row returns the cells of row i
func (t *Table) Row(i int) []string {
	return append([]string{}, t.rows[i]...)
}

// HasColumn reports whether a column with the given name exists
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex returns the position of the named column, or -1
func (t *Table) ColumnIndex(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	return -1
}

// Cell returns the value at row i of the named column, or "" when the
// column does not exist
func (t *Table) Cell(i int, column string) string {
	idx, ok := t.index[column]
	if !ok {
		return ""
	}
	return t.rows[i][idx]
}

// Numeric parses the named column as float64 values. Cells that are empty
// or unparseable become NaN. Thousands separators are tolerated.
func (t *Table) Numeric(column string) []float64 {
	idx, ok := t.index[column]
	if !ok {
		return nil
	}

	values := make([]float64, len(t.rows))
	for i, row := range t.rows {
		v, ok := parseNumber(row[idx])
		if !ok {
			v = math.NaN()
		}
		values[i] = v
	}
	return values
}

// NumericFilled parses the named column as float64 values with missing or
// unparseable cells filled with zero.
func (t *Table) NumericFilled(column string) []float64 {
	values := t.Numeric(column)
	for i, v := range values {
		if math.IsNaN(v) {
			values[i] = 0
		}
	}
	return values
}

// parseNumber parses a cell as a float, tolerating thousands separators
// and surrounding whitespace
func parseNumber(cell string) (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Binary coerces the named column to 0/1 integer labels. Boolean-like text
// (true/yes/won/closed) maps to 1; numeric cells map to their integer
// truncation clamped to 0/1 on sign; everything else maps to 0.
func (t *Table) Binary(column string) []int {
	idx, ok := t.index[column]
	if !ok {
		return nil
	}

	labels := make([]int, len(t.rows))
	for i, row := range t.rows {
		labels[i] = coerceBinary(row[idx])
	}
	return labels
}

// BinaryDropEmpty coerces the named column like Binary but excludes rows
// whose cell is empty, the way Numeric marks empty cells NaN for callers
// that average over present values only.
func (t *Table) BinaryDropEmpty(column string) []int {
	idx, ok := t.index[column]
	if !ok {
		return nil
	}

	labels := make([]int, 0, len(t.rows))
	for _, row := range t.rows {
		if strings.TrimSpace(row[idx]) == "" {
			continue
		}
		labels = append(labels, coerceBinary(row[idx]))
	}
	return labels
}

func coerceBinary(cell string) int {
	s := strings.ToLower(strings.TrimSpace(cell))
	switch s {
	case "true", "yes", "y", "won", "closed":
		return 1
	case "", "false", "no", "n":
		return 0
	}
	if v, ok := parseNumber(s); ok && v != 0 {
		return 1
	}
	return 0
}
