package engine

import (
	"sort"
	"strings"

	"github.com/vegasq/tabcat/internal/query"
)

// LimitRows keeps at most the first n rows. Zero means unlimited.
func LimitRows(t Table, n uint) Table {
	if n == 0 || uint(len(t.Rows)) <= n {
		return t
	}
	return t.withRows(t.Rows[:n:n])
}

// SortRows orders rows by the cells of order.Column using a stable string
// comparison. The column must match a header exactly; when it does not,
// the table is returned unchanged.
func SortRows(t Table, order query.Order) Table {
	idx := t.ColumnIndex(order.Column)
	if idx < 0 {
		return t
	}

	rows := make([][]string, len(t.Rows))
	copy(rows, t.Rows)

	desc := order.Direction == query.Descending
	sort.SliceStable(rows, func(i, j int) bool {
		c := strings.Compare(cell(rows[i], idx), cell(rows[j], idx))
		if desc {
			return c > 0
		}
		return c < 0
	})

	return t.withRows(rows)
}

// ResolveColumns maps a select list onto header indices. The wildcard
// selects every column in header order; other names match headers
// case-insensitively, first match wins, and unmatched names are dropped.
func ResolveColumns(header []string, columns []string) []int {
	if query.IsWildcard(columns) {
		indices := make([]int, len(header))
		for i := range header {
			indices[i] = i
		}
		return indices
	}

	indices := make([]int, 0, len(columns))
	for _, col := range columns {
		for i, name := range header {
			if strings.EqualFold(col, name) {
				indices = append(indices, i)
				break
			}
		}
	}
	return indices
}

// Project builds a result holding the cells at indices, in that order.
// The result header uses the table's header casing.
func Project(t Table, indices []int) *Result {
	result := &Result{
		Header: make([]string, len(indices)),
		Rows:   make([][]string, 0, len(t.Rows)),
	}
	for i, idx := range indices {
		result.Header[i] = t.Header[idx]
	}

	for _, row := range t.Rows {
		projected := make([]string, len(indices))
		for i, idx := range indices {
			projected[i] = cell(row, idx)
		}
		result.Rows = append(result.Rows, projected)
	}

	return result
}
