package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/segmentio/parquet-go"
)

// ParquetReader reads parquet files into string records.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type ParquetReader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewParquetReader opens the parquet file at path.
//
// Returns an error if the file doesn't exist or is not a valid parquet file.
func NewParquetReader(path string) (*ParquetReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open file: %w", ErrRead, err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%w: failed to stat file: %w", ErrRead, err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%w: failed to open parquet file: %w", ErrRead, err)
	}

	return &ParquetReader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// Header returns the top-level column names in schema order
func (r *ParquetReader) Header() []string {
	fields := r.pqFile.Schema().Fields()
	header := make([]string, len(fields))
	for i, field := range fields {
		header[i] = field.Name()
	}
	return header
}

// ReadAll reads every row into memory. The first record is the header;
// each following record holds one row's values rendered as strings, in
// header order. Null values become empty cells.
func (r *ParquetReader) ReadAll() ([][]string, error) {
	header := r.Header()
	records := [][]string{header}

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	for {
		row := make(map[string]interface{})
		err := reader.Read(&row)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: failed to read row: %w", ErrRead, err)
		}

		record := make([]string, len(header))
		for i, col := range header {
			record[i] = formatValue(row[col])
		}
		records = append(records, record)
	}

	return records, nil
}

// Close closes the underlying file
func (r *ParquetReader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// formatValue renders a parquet value as a cell
func formatValue(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
