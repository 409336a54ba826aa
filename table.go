package meretable

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Table is a set of possibly nested columns and the rows filled into them.
//
// The mutating methods return the table so calls can be chained. A method
// that fails leaves the table untouched and records its error, which [Table.Err]
// reports. The zero value is an empty table ready to use.
//
// A Table is not safe for concurrent use.
type Table struct {
	columns []*column
	numRows int
	err     error
}

// New returns a table with the given top-level columns.
func New(names ...string) *Table {
	t := &Table{}
	return t.AddColumns(names...)
}

// Err returns every error recorded by failed mutations, joined, or nil.
func (t *Table) Err() error { return t.err }

var errEmptyName = fmt.Errorf("%w: empty column name", ErrInvalidStructuralEdit)

func (t *Table) fail(err error) *Table {
	t.err = errors.Join(t.err, err)
	return t
}

// AddColumn appends a top-level leaf column. A column with the same name
// already at the top level makes this a no-op.
func (t *Table) AddColumn(name string) *Table {
	return t.AddColumns(name)
}

// AddColumns appends top-level leaf columns, skipping names already present
// at the top level. Names must not be empty, and new columns cannot be added
// once rows exist.
func (t *Table) AddColumns(names ...string) *Table {
	if slices.Contains(names, "") {
		return t.fail(errEmptyName)
	}
	var fresh []string
	for _, name := range names {
		if findColumn(t.columns, name) == nil && !slices.Contains(fresh, name) {
			fresh = append(fresh, name)
		}
	}
	if len(fresh) == 0 {
		return t
	}
	if t.numRows > 0 {
		return t.fail(fmt.Errorf("%w: cannot add column %q to a table with %d rows", ErrInvalidStructuralEdit, fresh[0], t.numRows))
	}
	for _, name := range fresh {
		t.columns = append(t.columns, newColumn(name))
	}
	return t
}

// AddSubcolumn appends subName under the top-level column columnName,
// creating the column if needed. An existing subcolumn of the same name makes
// this a no-op.
func (t *Table) AddSubcolumn(columnName, subName string) *Table {
	return t.AddPath(columnName, subName)
}

// AddPath makes sure the column path exists, creating each missing level.
// AddPath("A") behaves like AddColumn("A"); AddPath("A", "B", "C") nests C
// under B under A. Names must not be empty, and structure cannot change once
// rows exist.
func (t *Table) AddPath(path ...string) *Table {
	if len(path) == 0 {
		return t
	}
	if slices.Contains(path, "") {
		return t.fail(errEmptyName)
	}
	if t.hasPath(path) {
		return t
	}
	if t.numRows > 0 {
		return t.fail(fmt.Errorf("%w: cannot add %q to a table with %d rows", ErrInvalidStructuralEdit, strings.Join(path, HeaderSep), t.numRows))
	}

	col := findColumn(t.columns, path[0])
	if col == nil {
		col = newColumn(path[0])
		t.columns = append(t.columns, col)
	}
	for _, name := range path[1:] {
		next := col.find(name)
		if next == nil {
			next = col.addChild(name)
		}
		col = next
	}
	return t
}

func (t *Table) hasPath(path []string) bool {
	col := findColumn(t.columns, path[0])
	for _, name := range path[1:] {
		if col == nil {
			return false
		}
		col = col.find(name)
	}
	return col != nil
}

// AddValues appends one row. values are assigned to the leaf columns
// depth-first, left to right, and there must be exactly one per leaf.
func (t *Table) AddValues(values ...string) *Table {
	if err := t.addRow(values); err != nil {
		return t.fail(err)
	}
	return t
}

func (t *Table) addRow(values []string) error {
	if want := t.NumLeaves(); len(values) != want {
		return fmt.Errorf("%w: got %d values, want %d", ErrArgumentCountMismatch, len(values), want)
	}
	pos := 0
	for _, col := range t.columns {
		col.consume(values, &pos)
	}
	t.numRows++
	return nil
}

// Clear drops every row and keeps the columns.
func (t *Table) Clear() *Table {
	for _, col := range t.columns {
		col.clearValues()
	}
	t.numRows = 0
	return t
}

// NumRows returns the number of rows added since creation or the last Clear.
func (t *Table) NumRows() int { return t.numRows }

// NumLeaves returns the number of leaf columns, which is the number of values
// every row must supply.
func (t *Table) NumLeaves() int {
	n := 0
	for _, col := range t.columns {
		n += col.leaves()
	}
	return n
}

// Depth returns the number of header levels: 0 for a table without columns,
// 1 when no column has subcolumns.
func (t *Table) Depth() int {
	d := 0
	for _, col := range t.columns {
		d = max(d, col.depth())
	}
	return d
}

// Headers returns the title path of every leaf column, left to right.
func (t *Table) Headers() [][]string {
	var out [][]string
	walkLeaves(t.columns, nil, func(path []string, _ *column) {
		out = append(out, path)
	})
	return out
}

// Rows returns a copy of the rows in leaf order.
func (t *Table) Rows() [][]string {
	rows := make([][]string, t.numRows)
	n := t.NumLeaves()
	for i := range rows {
		rows[i] = make([]string, 0, n)
	}
	walkLeaves(t.columns, nil, func(_ []string, leaf *column) {
		for i, v := range leaf.values {
			rows[i] = append(rows[i], v)
		}
	})
	return rows
}

// walkLeaves calls fn for every leaf under cols in display order with a fresh
// copy of its title path.
func walkLeaves(cols []*column, prefix []string, fn func(path []string, leaf *column)) {
	for _, col := range cols {
		path := append(append([]string(nil), prefix...), col.title)
		if col.isLeaf() {
			fn(path, col)
			continue
		}
		walkLeaves(col.children, path, fn)
	}
}
