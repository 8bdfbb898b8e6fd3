package output

import (
	"encoding/json"
	"io"

	"github.com/vegasq/tabcat/internal/engine"
)

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per row, keyed by header name. When a
// header name repeats, the rightmost cell wins.
func (j *JSONFormatter) Format(result *engine.Result) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range result.Rows {
		obj := make(map[string]string, len(result.Header))
		for i, name := range result.Header {
			if i < len(row) {
				obj[name] = row[i]
			}
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}
