package table

import "fmt"

// Table is an ordered set of named columns plus an ordered list of rows.
// Column names are unique within a table; every row has exactly one cell
// per column.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]Value
}

// New creates an empty table with the given column order.
// Duplicate column names are rejected.
func New(columns []string) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, exists := index[name]; exists {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		index[name] = i
	}
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{columns: cols, index: index, rows: nil}, nil
}

// MustNew is New for static schemas; it panics on duplicate columns.
// Intended for tests and built-in sample data.
func MustNew(columns []string) *Table {
	t, err := New(columns)
	if err != nil {
		panic(err)
	}
	return t
}

// Columns returns a copy of the ordered column names.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// NumColumns returns the schema width.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// AppendRow adds a row. The cell count must match the schema width.
func (t *Table) AppendRow(cells ...Value) error {
	if len(cells) != len(t.columns) {
		return fmt.Errorf("row has %d cells, schema has %d columns", len(cells), len(t.columns))
	}
	row := make([]Value, len(cells))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return nil
}

// Row returns the cells of row i. The returned slice is shared with the
// table; callers must not modify it.
func (t *Table) Row(i int) []Value {
	return t.rows[i]
}

// Cell returns the value at (row, column). The second return is false if
// the column does not exist.
func (t *Table) Cell(row int, column string) (Value, bool) {
	i, ok := t.index[column]
	if !ok {
		return Null(), false
	}
	return t.rows[row][i], true
}

// Clone returns a deep copy. Values are immutable, so copying the row
// slices is enough.
func (t *Table) Clone() *Table {
	out := MustNew(t.columns)
	out.rows = make([][]Value, len(t.rows))
	for i, row := range t.rows {
		cells := make([]Value, len(row))
		copy(cells, row)
		out.rows[i] = cells
	}
	return out
}

// Rename returns a copy of the table with column old renamed to new.
// Row data is copied; the receiver is untouched.
func (t *Table) Rename(old, new string) (*Table, error) {
	i, ok := t.index[old]
	if !ok {
		return nil, fmt.Errorf("unknown column %q", old)
	}
	if _, exists := t.index[new]; exists && new != old {
		return nil, fmt.Errorf("column %q already exists", new)
	}
	cols := t.Columns()
	cols[i] = new
	out, err := New(cols)
	if err != nil {
		return nil, err
	}
	out.rows = make([][]Value, len(t.rows))
	for r, row := range t.rows {
		cells := make([]Value, len(row))
		copy(cells, row)
		out.rows[r] = cells
	}
	return out, nil
}
