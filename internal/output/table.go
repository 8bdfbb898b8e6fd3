package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/tabcat/internal/engine"
)

// TableFormatter draws the result as a bordered text table
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format renders the result. Header names are printed as given.
func (f *TableFormatter) Format(result *engine.Result) error {
	table := tablewriter.NewWriter(f.writer)
	table.SetHeader(result.Header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(result.Rows)
	table.Render()
	return nil
}
