// Package output renders query results.
//
// Supported formats:
//   - tsv: tab-separated header, a dashed separator line, then rows
//   - table: bordered table drawn with tablewriter
//   - csv: comma-separated values with header row
//   - json: JSON Lines, one object per row keyed by header
//
// Example usage:
//
//	formatter, err := output.New(output.FormatTSV, os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(result); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"fmt"
	"io"

	"github.com/vegasq/tabcat/internal/engine"
)

// Format names
const (
	FormatTSV   = "tsv"
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

// Formats lists every supported format name
var Formats = []string{FormatTSV, FormatTable, FormatCSV, FormatJSON}

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format writes the result in the formatter's specific format
	Format(result *engine.Result) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// IsFormat reports whether name is a supported format
func IsFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}

// New returns the formatter for the named format writing to w
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case FormatTSV:
		return NewTSVFormatter(w), nil
	case FormatTable:
		return NewTableFormatter(w), nil
	case FormatCSV:
		return NewCSVFormatter(w), nil
	case FormatJSON:
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format '%s'", format)
	}
}
