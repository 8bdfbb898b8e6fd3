package engine

import (
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vegasq/tabcat/internal/query"
)

// memorySource serves records from memory and counts reads
type memorySource struct {
	files map[string][][]string
	err   error
	reads int
}

func (m *memorySource) Read(path string) ([][]string, error) {
	m.reads++
	if m.err != nil {
		return nil, m.err
	}
	records, ok := m.files[path]
	if !ok {
		return nil, errors.New("file not found: " + path)
	}
	return records, nil
}

// sampleRecords mirrors testdata/sample.csv
func sampleRecords() [][]string {
	return [][]string{
		{"id", "team_id", "name", "note"},
		{"1", "1", "name1", "note1"},
		{"2", "1", "name2", "note2"},
		{"3", "2", "name3", "note3"},
		{"4", "3", "name4", "note4"},
		{"5", "4", "name5", "note5"},
		{"6", "1", "name6", "note5"},
		{"7", "2", "name7", "note6"},
	}
}

func newSampleExecutor() (*Executor, *memorySource) {
	src := &memorySource{files: map[string][][]string{
		"./sample.csv": sampleRecords(),
		"./empty.csv":  nil,
	}}
	return NewExecutor(src, nil), src
}

func TestExecutor_Execute(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantHeader []string
		wantRows   [][]string
	}{
		{
			name:       "select all",
			query:      "select * from ./sample.csv limit 2",
			wantHeader: []string{"id", "team_id", "name", "note"},
			wantRows: [][]string{
				{"1", "1", "name1", "note1"},
				{"2", "1", "name2", "note2"},
			},
		},
		{
			name:       "projection keeps header casing",
			query:      "select NAME, Id from ./sample.csv limit 1",
			wantHeader: []string{"name", "id"},
			wantRows:   [][]string{{"name1", "1"}},
		},
		{
			name:       "where and order",
			query:      "select id, name from ./sample.csv where team_id = 1 order by id desc",
			wantHeader: []string{"id", "name"},
			wantRows:   [][]string{{"6", "name6"}, {"2", "name2"}, {"1", "name1"}},
		},
		{
			name:       "limit applies after sort",
			query:      "select id from ./sample.csv order by id desc limit 2",
			wantHeader: []string{"id"},
			wantRows:   [][]string{{"7"}, {"6"}},
		},
		{
			name:       "numeric predicates",
			query:      "select id from ./sample.csv where id > 2 and id <= 4",
			wantHeader: []string{"id"},
			wantRows:   [][]string{{"3"}, {"4"}},
		},
		{
			name:       "unmatched columns dropped",
			query:      "select id, missing from ./sample.csv where id = 5",
			wantHeader: []string{"id"},
			wantRows:   [][]string{{"5"}},
		},
		{
			name:       "unknown where column skips the whole filter",
			query:      "select id from ./sample.csv where id = 2 and ghost = x",
			wantHeader: []string{"id"},
			wantRows:   [][]string{{"1"}, {"2"}, {"3"}, {"4"}, {"5"}, {"6"}, {"7"}},
		},
		{
			name:       "empty select keeps rows with no cells",
			query:      "select from ./sample.csv limit 1",
			wantHeader: []string{},
			wantRows:   [][]string{{}},
		},
		{
			name:       "unknown order column leaves source order",
			query:      "select id from ./sample.csv order by nope desc limit 3",
			wantHeader: []string{"id"},
			wantRows:   [][]string{{"1"}, {"2"}, {"3"}},
		},
		{
			name:       "invalid limit is unlimited",
			query:      "select id from ./sample.csv where note = note5 limit abc",
			wantHeader: []string{"id"},
			wantRows:   [][]string{{"5"}, {"6"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec, src := newSampleExecutor()
			q, err := query.Parse(tt.query)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			result, err := exec.Execute(q)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if src.reads != 1 {
				t.Errorf("expected source to be read once, got %d", src.reads)
			}
			if !reflect.DeepEqual(result.Header, tt.wantHeader) {
				t.Errorf("header = %v, want %v", result.Header, tt.wantHeader)
			}
			if len(result.Rows) != len(tt.wantRows) {
				t.Fatalf("rows = %v, want %v", result.Rows, tt.wantRows)
			}
			for i := range tt.wantRows {
				if len(result.Rows[i]) != len(tt.wantRows[i]) {
					t.Errorf("row %d = %v, want %v", i, result.Rows[i], tt.wantRows[i])
					continue
				}
				for j := range tt.wantRows[i] {
					if result.Rows[i][j] != tt.wantRows[i][j] {
						t.Errorf("row %d = %v, want %v", i, result.Rows[i], tt.wantRows[i])
						break
					}
				}
			}
		})
	}
}

func TestExecutor_EmptySource(t *testing.T) {
	exec, _ := newSampleExecutor()

	result, err := exec.Execute(query.New("select * from ./empty.csv"))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(result.Header) != 0 || len(result.Rows) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestExecutor_Errors(t *testing.T) {
	readErr := errors.New("disk on fire")

	t.Run("missing from path", func(t *testing.T) {
		exec, src := newSampleExecutor()
		_, err := exec.Execute(query.New("select * from"))
		if !errors.Is(err, query.ErrSyntax) {
			t.Errorf("expected ErrSyntax, got %v", err)
		}
		if src.reads != 0 {
			t.Errorf("source read %d times before path was known", src.reads)
		}
	})

	t.Run("source error is propagated", func(t *testing.T) {
		src := &memorySource{err: readErr}
		_, err := NewExecutor(src, nil).Execute(query.New("select * from x.csv"))
		if !errors.Is(err, readErr) {
			t.Errorf("expected source error, got %v", err)
		}
	})
}

func TestExecutor_Schema(t *testing.T) {
	exec, _ := newSampleExecutor()

	result, err := exec.Schema(query.New("select * from ./sample.csv"))
	if err != nil {
		t.Fatalf("Schema() error = %v", err)
	}

	want := [][]string{{"id"}, {"team_id"}, {"name"}, {"note"}}
	if !reflect.DeepEqual(result.Header, []string{"column"}) {
		t.Errorf("header = %v", result.Header)
	}
	if !reflect.DeepEqual(result.Rows, want) {
		t.Errorf("rows = %v, want %v", result.Rows, want)
	}
}

func TestExecutor_LogsFallbacks(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	src := &memorySource{files: map[string][][]string{"./sample.csv": sampleRecords()}}
	exec := NewExecutor(src, zap.New(core).Sugar())

	q := query.New("select id, ghost from ./sample.csv where age > 3 order by rank")
	if _, err := exec.Execute(q); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, msg := range []string{
		"unmatched select columns dropped",
		"where columns not found, filter skipped",
		"order column not found, rows left unsorted",
	} {
		if logs.FilterMessage(msg).Len() != 1 {
			t.Errorf("expected one %q log entry, got %d", msg, logs.FilterMessage(msg).Len())
		}
	}
}
