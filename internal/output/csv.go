package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vegasq/tabcat/internal/engine"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the header and rows as CSV
func (c *CSVFormatter) Format(result *engine.Result) error {
	csvWriter := csv.NewWriter(c.writer)

	if len(result.Header) > 0 {
		if err := csvWriter.Write(result.Header); err != nil {
			return err
		}
	}

	record := make([]string, len(result.Header))
	for _, row := range result.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) {
				record[i] = sanitize(row[i])
			}
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}

// sanitize guards against CSV injection by prefixing cells that a
// spreadsheet would treat as a formula. Numbers are left alone.
func sanitize(val string) string {
	if val == "" {
		return val
	}
	if _, err := strconv.ParseFloat(val, 64); err == nil {
		return val
	}
	switch val[0] {
	case '=', '+', '-', '@', '\t', '\r', '\n', '|':
		return "'" + strings.ReplaceAll(val, "'", "''")
	}
	return val
}
