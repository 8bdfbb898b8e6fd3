// Package reader loads tables from delimited text and Parquet files.
//
// Every source returns the whole file as records: the first record is the
// header and each record is an ordered sequence of string cells. Paths
// ending in .parquet are read with the segmentio/parquet-go library; any
// other path is read as comma-delimited text. Glob patterns concatenate
// the matching files.
package reader

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultMaxFiles is the default cap on files matched by a glob pattern
const DefaultMaxFiles = 1000

// ErrRead is the kind of every error returned while loading a source
var ErrRead = errors.New("read error")

// Dispatcher picks a reader by file extension and expands glob patterns.
// It satisfies engine.RowSource.
type Dispatcher struct {
	MaxFiles int
}

// NewDispatcher creates a dispatcher allowing up to maxFiles glob matches.
// A non-positive maxFiles uses DefaultMaxFiles.
func NewDispatcher(maxFiles int) *Dispatcher {
	if maxFiles <= 0 {
		maxFiles = DefaultMaxFiles
	}
	return &Dispatcher{MaxFiles: maxFiles}
}

// Read loads all records at path.
//
// When path contains glob wildcards (*, ? or [range]) every matching file
// is read in sorted order. The header is taken from the first non-empty
// file and the header record of each later file is dropped.
func (d *Dispatcher) Read(path string) ([][]string, error) {
	if !IsPattern(path) {
		return ReadFile(path)
	}

	matches, err := filepath.Glob(path)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid glob pattern: %w", ErrRead, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no files match pattern: %s", ErrRead, path)
	}
	if len(matches) > d.MaxFiles {
		return nil, fmt.Errorf("%w: glob pattern matched too many files (%d), maximum is %d", ErrRead, len(matches), d.MaxFiles)
	}
	sort.Strings(matches)

	var all [][]string
	for _, match := range matches {
		records, err := ReadFile(match)
		if err != nil {
			return nil, err
		}
		if len(all) > 0 && len(records) > 0 {
			records = records[1:]
		}
		all = append(all, records...)
	}

	return all, nil
}

// IsPattern reports whether path contains glob wildcards
func IsPattern(path string) bool {
	return strings.ContainsAny(path, "*?[")
}

// IsParquet reports whether path names a Parquet file
func IsParquet(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".parquet")
}

// ReadFile loads one file, choosing the reader by extension
func ReadFile(path string) ([][]string, error) {
	if IsParquet(path) {
		r, err := NewParquetReader(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = r.Close() }()
		return r.ReadAll()
	}

	return ReadDelimited(path)
}
