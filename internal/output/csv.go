// Package output serializes normalization results to tabular form.
package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bionorm/targetnorm/internal/normalize"
)

// resultColumns are appended after the input file's own columns.
var resultColumns = []string{
	"clean_text",
	"clean_text_alt",
	"query_tokens",
	"gene_like_candidates",
	"hints",
	"rules_applied",
	"hint_taxon",
}

// CSVWriter writes input rows with the normalization result columns
// appended. Multi-value columns are joined ("|" for tokens, space for
// candidates); hints and rules_applied are serialized as JSON.
type CSVWriter struct {
	w       *bufio.Writer
	delim   rune
	uniprot bool
}

// NewCSVWriter creates a writer with the given field delimiter; 0 selects
// comma.
func NewCSVWriter(w io.Writer, delim rune) *CSVWriter {
	if delim == 0 {
		delim = ','
	}
	return &CSVWriter{
		w:     bufio.NewWriter(w),
		delim: delim,
	}
}

// IncludeUniprotMatch adds a trailing uniprot_match column. Must be called
// before WriteHeader.
func (cw *CSVWriter) IncludeUniprotMatch() {
	cw.uniprot = true
}

// WriteHeader writes the input columns followed by the result columns.
func (cw *CSVWriter) WriteHeader(inputColumns []string) error {
	row := make([]string, 0, len(inputColumns)+len(resultColumns)+1)
	row = append(row, inputColumns...)
	row = append(row, resultColumns...)
	if cw.uniprot {
		row = append(row, "uniprot_match")
	}
	return cw.writeRow(row)
}

// Write writes one input row with its normalization result appended.
func (cw *CSVWriter) Write(inputRow []string, res normalize.Result) error {
	return cw.write(inputRow, res, "")
}

// WriteValidated additionally records the matched symbol (or empty) in the
// uniprot_match column.
func (cw *CSVWriter) WriteValidated(inputRow []string, res normalize.Result, match string) error {
	return cw.write(inputRow, res, match)
}

func (cw *CSVWriter) write(inputRow []string, res normalize.Result, match string) error {
	hints, err := json.Marshal(res.Hints)
	if err != nil {
		return fmt.Errorf("marshal hints: %w", err)
	}
	rules, err := json.Marshal(res.RulesApplied)
	if err != nil {
		return fmt.Errorf("marshal rules: %w", err)
	}

	row := make([]string, 0, len(inputRow)+len(resultColumns)+1)
	row = append(row, inputRow...)
	row = append(row,
		res.CleanText,
		res.CleanTextAlt,
		strings.Join(res.QueryTokens, "|"),
		strings.Join(res.GeneLikeCandidates, " "),
		string(hints),
		string(rules),
		strconv.Itoa(res.HintTaxon),
	)
	if cw.uniprot {
		row = append(row, match)
	}
	return cw.writeRow(row)
}

func (cw *CSVWriter) writeRow(row []string) error {
	for i, field := range row {
		if i > 0 {
			if _, err := cw.w.WriteRune(cw.delim); err != nil {
				return err
			}
		}
		if _, err := cw.w.WriteString(cw.quote(field)); err != nil {
			return err
		}
	}
	return cw.w.WriteByte('\n')
}

// quote wraps a field in double quotes when it contains the delimiter, a
// quote or a newline.
func (cw *CSVWriter) quote(field string) string {
	if !strings.ContainsAny(field, string(cw.delim)+"\"\n\r") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// Flush flushes any buffered data to the underlying writer.
func (cw *CSVWriter) Flush() error {
	return cw.w.Flush()
}
