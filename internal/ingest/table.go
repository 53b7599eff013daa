package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// Table is a raw tabular view of the upload: lowercased, trimmed header names
// plus string cells. Column mapping and date resolution work on this shape for
// both delimited and spreadsheet input.
type Table struct {
	Columns []string
	Rows    [][]string
}

var (
	zipMagic = []byte{0x50, 0x4b, 0x03, 0x04}
	oleMagic = []byte{0xd0, 0xcf, 0x11, 0xe0}
)

// looksLikeSpreadsheet reports whether the head of the payload carries a ZIP
// (xlsx) or OLE (legacy xls) signature.
func looksLikeSpreadsheet(raw []byte) bool {
	head := raw
	if len(head) > 100 {
		head = head[:100]
	}
	return bytes.Contains(head, zipMagic) || bytes.Contains(head, oleMagic)
}

// DetectDelimiter inspects the first 1000 characters. Tab wins over semicolon,
// the dominant real-world source being tab-delimited ledger exports; comma is
// the fallback.
func DetectDelimiter(text string) rune {
	sample := text
	if len(sample) > 1000 {
		sample = sample[:1000]
	}
	switch {
	case strings.ContainsRune(sample, '\t'):
		return '\t'
	case strings.ContainsRune(sample, ';'):
		return ';'
	default:
		return ','
	}
}

// ParseDelimited decodes raw bytes via the encoding ladder, detects the
// delimiter and parses the text into a Table. It rejects spreadsheet payloads
// masquerading as delimited text.
func ParseDelimited(raw []byte) (*Table, string, rune, error) {
	if looksLikeSpreadsheet(raw) {
		return nil, "", 0, &FormatError{Reason: "this appears to be a spreadsheet saved with a .csv extension; upload it as .xlsx or re-save it as an actual CSV file"}
	}

	text, encoding, err := DecodeText(raw)
	if err != nil {
		return nil, "", 0, err
	}

	delim := DetectDelimiter(text)
	table, err := parseText(text, delim)
	if err != nil {
		return nil, encoding, delim, err
	}
	return table, encoding, delim, nil
}

func parseText(text string, delim rune) (*Table, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse delimited text: %w", err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = CanonicalColumnName(name)
	}

	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, padRow(rec, len(header)))
	}
	return &Table{Columns: header, Rows: rows}, nil
}

// CanonicalColumnName normalizes a header cell: trimmed and lowercased.
func CanonicalColumnName(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
}

func padRow(rec []string, width int) []string {
	if len(rec) == width {
		return rec
	}
	out := make([]string, width)
	copy(out, rec)
	return out
}

func (t *Table) columnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

func (t *Table) cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
