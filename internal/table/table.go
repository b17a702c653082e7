package table

import (
	"fmt"
	"sort"
)

// Column is a named, ordered sequence of cells. All cells in a loaded column
// share one declared kind, with nulls interleaved where values are missing.
type Column struct {
	Name  string
	Cells []Cell
}

// Kind reports the declared kind of the column: the kind of its first
// non-null cell, or KindNull when every cell is missing.
func (c *Column) Kind() Kind {
	for _, cell := range c.Cells {
		if !cell.IsNull() {
			return cell.Kind()
		}
	}
	return KindNull
}

// NonNull counts the cells that hold a value.
func (c *Column) NonNull() int {
	n := 0
	for _, cell := range c.Cells {
		if !cell.IsNull() {
			n++
		}
	}
	return n
}

// Table is an ordered collection of equal-length, uniquely named columns.
// Row i across all columns forms one logical record.
type Table struct {
	columns []*Column
	rows    int
}

// New assembles a table from columns, enforcing unique names and equal
// lengths. The row count is taken from the first column.
func New(columns ...*Column) (*Table, error) {
	t := &Table{}
	for _, col := range columns {
		if err := t.AppendColumn(col); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// AppendColumn adds a column to the right edge of the table.
func (t *Table) AppendColumn(col *Column) error {
	if col == nil {
		return fmt.Errorf("table: nil column")
	}
	if col.Name == "" {
		return fmt.Errorf("table: column name must not be empty")
	}
	if _, ok := t.Column(col.Name); ok {
		return fmt.Errorf("table: duplicate column %q", col.Name)
	}
	if len(t.columns) == 0 {
		t.rows = len(col.Cells)
	} else if len(col.Cells) != t.rows {
		return fmt.Errorf("table: column %q has %d cells, want %d", col.Name, len(col.Cells), t.rows)
	}
	t.columns = append(t.columns, col)
	return nil
}

// NumRows returns the number of records.
func (t *Table) NumRows() int { return t.rows }

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.columns) }

// Columns returns the columns in table order. The returned slice is the
// table's own backing store; callers mutate cells through it but must not
// reorder or resize it.
func (t *Table) Columns() []*Column { return t.columns }

// Column finds a column by exact name.
func (t *Table) Column(name string) (*Column, bool) {
	for _, col := range t.columns {
		if col.Name == name {
			return col, true
		}
	}
	return nil, false
}

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}
	return names
}

// Row copies record i across all columns in table order.
func (t *Table) Row(i int) []Cell {
	cells := make([]Cell, len(t.columns))
	for j, col := range t.columns {
		cells[j] = col.Cells[i]
	}
	return cells
}

// SortColumns reorders columns by name using plain byte comparison.
func (t *Table) SortColumns() {
	sort.Slice(t.columns, func(i, j int) bool {
		return t.columns[i].Name < t.columns[j].Name
	})
}

// Clone deep-copies the table so one copy can be mutated independently of
// the other.
func (t *Table) Clone() *Table {
	out := &Table{rows: t.rows, columns: make([]*Column, len(t.columns))}
	for i, col := range t.columns {
		cells := make([]Cell, len(col.Cells))
		copy(cells, col.Cells)
		out.columns[i] = &Column{Name: col.Name, Cells: cells}
	}
	return out
}
