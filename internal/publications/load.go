// Package publications loads the publications CSV into an in-memory record
// set and derives the filtered views shown on the page.
package publications

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// ErrNotFound is returned by Load when the publications file does not exist.
var ErrNotFound = errors.New("publications file not found")

// RecordSet is the tabular content of a publications file. Every row has
// exactly len(Columns) cells.
type RecordSet struct {
	Columns []string
	Rows    [][]string
}

// Len returns the number of rows.
func (rs *RecordSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Rows)
}

// ColumnIndex returns the index of the named column, or -1.
func (rs *RecordSet) ColumnIndex(name string) int {
	if rs == nil {
		return -1
	}
	for i, c := range rs.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// LookupEncoding resolves a text encoding by name. "latin1" means
// ISO-8859-1, not the windows-1252 superset WHATWG labels map it to.
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return encoding.Nop, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1", "l1":
		return charmap.ISO8859_1, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
	return enc, nil
}

// Load reads the CSV file at path, decoding it from the named encoding.
// It returns ErrNotFound if the file does not exist.
func Load(path, encodingName string) (*RecordSet, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("accessing %s: %w", path, err)
	}

	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	rs, err := Read(transform.NewReader(bytes.NewReader(raw), enc.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rs, nil
}

// Read parses UTF-8 CSV from r. Header names are trimmed and upper-cased,
// non-breaking spaces in cells become plain spaces, and short rows are
// padded with empty cells.
func Read(r io.Reader) (*RecordSet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	rs := &RecordSet{Columns: make([]string, len(header))}
	for i, h := range header {
		rs.Columns[i] = strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(rs.Rows)+1, err)
		}
		if len(rec) > len(rs.Columns) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: expected %d fields, saw %d", line, len(rs.Columns), len(rec))
		}

		row := make([]string, len(rs.Columns))
		for i, cell := range rec {
			row[i] = strings.ReplaceAll(cell, "\u00a0", " ")
		}
		rs.Rows = append(rs.Rows, row)
	}

	return rs, nil
}
