package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/vegasq/tabcat/internal/query"
)

// RowSource loads every record stored at path. The first record is the
// header.
type RowSource interface {
	Read(path string) ([][]string, error)
}

// Executor runs queries against tables loaded from a RowSource
type Executor struct {
	source RowSource
	logger *zap.SugaredLogger
}

// NewExecutor creates an executor. A nil logger discards log output.
func NewExecutor(source RowSource, logger *zap.SugaredLogger) *Executor {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Executor{source: source, logger: logger}
}

// load reads the table named by the query's FROM clause
func (e *Executor) load(q *query.Query) (Table, error) {
	path, err := q.FilePath()
	if err != nil {
		return Table{}, err
	}

	records, err := e.source.Read(path)
	if err != nil {
		return Table{}, err
	}

	t := NewTable(records)
	e.logger.Debugw("table loaded", "path", path, "columns", len(t.Header), "rows", len(t.Rows))
	return t, nil
}

// Execute loads the query's table and applies filter, sort, limit and
// projection, in that order. An empty source yields an empty result.
func (e *Executor) Execute(q *query.Query) (*Result, error) {
	t, err := e.load(q)
	if err != nil {
		return nil, err
	}
	if t.Empty() {
		return &Result{}, nil
	}

	columns := q.Select()
	indices := ResolveColumns(t.Header, columns)
	if !query.IsWildcard(columns) && len(indices) < len(columns) {
		e.logger.Debugw("unmatched select columns dropped", "requested", columns, "matched", len(indices))
	}

	if predicates := q.Where(); len(predicates) > 0 {
		if missing := MissingColumns(t, predicates); len(missing) > 0 {
			e.logger.Debugw("where columns not found, filter skipped", "columns", missing)
		}
		t = FilterRows(t, predicates)
		e.logger.Debugw("rows filtered", "predicates", len(predicates), "rows", len(t.Rows))
	}

	if order := q.Order(); order.Column != "" {
		if t.ColumnIndex(order.Column) < 0 {
			e.logger.Debugw("order column not found, rows left unsorted", "column", order.Column)
		}
		t = SortRows(t, order)
	}

	if limit := q.Limit(); limit > 0 {
		t = LimitRows(t, limit)
		e.logger.Debugw("rows limited", "limit", limit, "rows", len(t.Rows))
	}

	return Project(t, indices), nil
}

// Schema returns the header of the query's table as a single "column"
// column, one row per header name
func (e *Executor) Schema(q *query.Query) (*Result, error) {
	t, err := e.load(q)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}

	result := &Result{Header: []string{"column"}}
	for _, name := range t.Header {
		result.Rows = append(result.Rows, []string{name})
	}
	return result, nil
}
