package engine

import (
	"strconv"

	"github.com/vegasq/tabcat/internal/query"
)

// outcome is the result of testing one row against one predicate.
// Only matched keeps the row.
type outcome int

const (
	matched outcome = iota
	mismatched
	columnNotFound
	rowTooShort
	parseFailed
	unknownOperator
)

func (o outcome) String() string {
	switch o {
	case matched:
		return "matched"
	case mismatched:
		return "mismatched"
	case columnNotFound:
		return "column not found"
	case rowTooShort:
		return "row too short"
	case parseFailed:
		return "parse failed"
	case unknownOperator:
		return "unknown operator"
	default:
		return "unknown"
	}
}

// evaluate tests row against p, whose column sits at idx
func evaluate(row []string, idx int, p query.Predicate) outcome {
	if idx < 0 {
		return columnNotFound
	}
	if idx >= len(row) {
		return rowTooShort
	}
	value := row[idx]

	switch {
	case p.Operator == query.OpEqual || p.Operator == query.OpNotEqual:
		return toOutcome(compareStrings(value, p.Operator, p.Value))
	case p.Operator.Relational():
		left, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return parseFailed
		}
		right, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			return parseFailed
		}
		return toOutcome(compareNumbers(left, p.Operator, right))
	default:
		return unknownOperator
	}
}

func toOutcome(ok bool) outcome {
	if ok {
		return matched
	}
	return mismatched
}

// compareNumbers compares two numbers
func compareNumbers(left float64, operator query.Operator, right float64) bool {
	switch operator {
	case query.OpLess:
		return left < right
	case query.OpGreater:
		return left > right
	case query.OpLessEqual:
		return left <= right
	case query.OpGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// compareStrings compares two strings exactly (case-sensitive)
func compareStrings(left string, operator query.Operator, right string) bool {
	switch operator {
	case query.OpEqual:
		return left == right
	case query.OpNotEqual:
		return left != right
	default:
		return false
	}
}

// FilterRows keeps the rows satisfying every predicate. As soon as a
// predicate names a column that is not in the header, filtering stops and
// the table passed in is returned unchanged, even if earlier predicates
// already narrowed it. Relational operators compare as numbers and exclude
// rows where either side does not parse; = and != compare strings exactly.
func FilterRows(t Table, predicates []query.Predicate) Table {
	filtered := t
	for _, p := range predicates {
		idx := t.ColumnIndex(p.Column)
		if idx < 0 {
			return t
		}
		filtered = filterOne(filtered, idx, p)
	}
	return filtered
}

// filterOne narrows t by a single predicate whose column sits at idx
func filterOne(t Table, idx int, p query.Predicate) Table {
	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if evaluate(row, idx, p) == matched {
			rows = append(rows, row)
		}
	}
	return t.withRows(rows)
}

// MissingColumns returns the predicate columns that are not in the header
func MissingColumns(t Table, predicates []query.Predicate) []string {
	var missing []string
	for _, p := range predicates {
		if t.ColumnIndex(p.Column) < 0 {
			missing = append(missing, p.Column)
		}
	}
	return missing
}
