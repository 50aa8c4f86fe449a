// Package input reads tabular target-name files. Two readers are provided:
// a streaming CSV reader with encoding and delimiter detection, and a
// DuckDB-backed reader for CSV/Parquet via SQL.
package input

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Table is an in-memory tabular slice of the input file.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Column returns the index of a named column, or an error listing the
// available columns.
func (t *Table) Column(name string) (int, error) {
	for i, col := range t.Columns {
		if col == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found; available columns: %s",
		name, strings.Join(t.Columns, ", "))
}

// CSVReader reads delimited text files. Encoding (utf-8, cp1251, latin1)
// and delimiter are detected from the content unless forced.
type CSVReader struct {
	// Delimiter forces a field separator; 0 means sniff from the header.
	Delimiter rune
	// Encoding forces a character encoding ("utf-8", "cp1251", "latin1");
	// empty means detect.
	Encoding string
}

var candidateDelims = []rune{',', ';', '\t', '|'}

// Read loads the whole file. Gzipped input is detected by magic bytes.
// "-" reads from stdin.
func (r *CSVReader) Read(path string) (*Table, error) {
	var src io.Reader
	if path == "-" {
		src = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input file: %w", err)
		}
		defer f.Close()
		src = f
	}

	br := bufio.NewReader(src)
	magic, err := br.Peek(2)
	if err == nil && len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		defer gz.Close()
		br = bufio.NewReader(gz)
	}

	raw, err := io.ReadAll(br)
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}

	text, err := decode(raw, r.Encoding)
	if err != nil {
		return nil, err
	}

	lines := splitLines(text)
	if len(lines) == 0 {
		return &Table{}, nil
	}

	delim := r.Delimiter
	if delim == 0 {
		delim = SniffDelimiter(lines[0])
	}

	table := &Table{Columns: splitFields(lines[0], delim)}
	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		table.Rows = append(table.Rows, splitFields(line, delim))
	}
	return table, nil
}

// decode converts raw bytes to a string, detecting the encoding when none
// is forced: valid UTF-8 is used as-is (minus BOM), otherwise cp1251 is
// tried before falling back to latin1.
func decode(raw []byte, encoding string) (string, error) {
	switch encoding {
	case "", "auto":
		if utf8.Valid(raw) {
			return string(bytes.TrimPrefix(raw, []byte("\ufeff"))), nil
		}
		if s, err := charmap.Windows1251.NewDecoder().Bytes(raw); err == nil && !bytes.ContainsRune(s, utf8.RuneError) {
			return string(s), nil
		}
		s, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return "", fmt.Errorf("decode input: %w", err)
		}
		return string(s), nil
	case "utf-8", "utf8":
		return string(bytes.TrimPrefix(raw, []byte("\ufeff"))), nil
	case "cp1251", "windows-1251":
		s, err := charmap.Windows1251.NewDecoder().Bytes(raw)
		if err != nil {
			return "", fmt.Errorf("decode cp1251: %w", err)
		}
		return string(s), nil
	case "latin1", "iso-8859-1":
		s, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return "", fmt.Errorf("decode latin1: %w", err)
		}
		return string(s), nil
	default:
		return "", fmt.Errorf("unsupported encoding %q", encoding)
	}
}

// SniffDelimiter picks the candidate separator occurring most often in the
// header line, defaulting to comma.
func SniffDelimiter(header string) rune {
	best := ','
	bestCount := 0
	for _, d := range candidateDelims {
		if n := strings.Count(header, string(d)); n > bestCount {
			best = d
			bestCount = n
		}
	}
	return best
}

func splitLines(text string) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}

// splitFields splits one line, honoring double-quoted fields with embedded
// delimiters and doubled-quote escapes.
func splitFields(line string, delim rune) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				cur.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case r == delim && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cur.String())
	return fields
}
