// Package engine executes parsed queries against in-memory tables.
//
// The row operations (FilterRows, SortRows, LimitRows, Project) are pure
// functions over a Table: they never modify their input and return a new
// Table. The Executor composes them in the order
// filter, sort, limit, project.
package engine

// Table is a header plus data rows, each an ordered sequence of cells.
// Rows are expected to have the header's arity but shorter rows are
// tolerated.
type Table struct {
	Header []string
	Rows   [][]string
}

// Result is the projected output of a query
type Result struct {
	Header []string
	Rows   [][]string
}

// NewTable builds a table from loaded records, treating the first record
// as the header. No records yield an empty table.
func NewTable(records [][]string) Table {
	if len(records) == 0 {
		return Table{}
	}
	return Table{
		Header: records[0],
		Rows:   records[1:],
	}
}

// Empty reports whether the table has neither header nor rows
func (t Table) Empty() bool {
	return len(t.Header) == 0 && len(t.Rows) == 0
}

// ColumnIndex returns the index of the first header equal to name, or -1
func (t Table) ColumnIndex(name string) int {
	for i, col := range t.Header {
		if col == name {
			return i
		}
	}
	return -1
}

// cell returns row[idx], or "" when the row is too short
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// withRows returns a table sharing t's header with the given rows
func (t Table) withRows(rows [][]string) Table {
	return Table{Header: t.Header, Rows: rows}
}
