package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// Delimiter separates cells on a line
	Delimiter = ","

	// MaxLineLength is the longest line accepted from a delimited file
	MaxLineLength = 16 * 1024 * 1024
)

// ReadDelimited reads a comma-delimited text file. Each line becomes one
// record, split on every comma with surrounding whitespace trimmed from
// each cell. Quotes have no special meaning.
func ReadDelimited(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open file: %w", ErrRead, err)
	}
	defer func() { _ = file.Close() }()

	records, err := ParseDelimited(file)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrRead, path, err)
	}
	return records, nil
}

// ParseDelimited splits every line of r into trimmed cells, preserving
// line order
func ParseDelimited(r io.Reader) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)

	records := make([][]string, 0)
	for scanner.Scan() {
		cells := strings.Split(scanner.Text(), Delimiter)
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		records = append(records, cells)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
