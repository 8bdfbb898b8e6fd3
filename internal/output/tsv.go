package output

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/vegasq/tabcat/internal/engine"
)

// TSVFormatter writes the header, a line of dashes as long as each header
// name, and one line per row, all tab-joined. Cells are not escaped.
type TSVFormatter struct {
	writer io.Writer
}

// NewTSVFormatter creates a new TSV formatter
func NewTSVFormatter(w io.Writer) *TSVFormatter {
	return &TSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TSVFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes the result as tab-separated lines
func (f *TSVFormatter) Format(result *engine.Result) error {
	w := bufio.NewWriter(f.writer)

	separators := make([]string, len(result.Header))
	for i, name := range result.Header {
		separators[i] = strings.Repeat("-", utf8.RuneCountInString(name))
	}

	writeLine(w, result.Header)
	writeLine(w, separators)
	for _, row := range result.Rows {
		writeLine(w, row)
	}

	return w.Flush()
}

// writeLine writes cells joined by tabs. Errors surface from Flush.
func writeLine(w *bufio.Writer, cells []string) {
	_, _ = w.WriteString(strings.Join(cells, "\t"))
	_ = w.WriteByte('\n')
}
