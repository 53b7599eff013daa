package ingest

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ParseSpreadsheet reads the first sheet of an .xlsx workbook into a Table.
// Spreadsheet input bypasses the encoding ladder and delimiter detection; the
// structure is already tabular. Legacy OLE .xls workbooks are rejected with a
// conversion hint.
func ParseSpreadsheet(raw []byte) (*Table, error) {
	if bytes.HasPrefix(raw, oleMagic) {
		return nil, &FormatError{Reason: "legacy .xls workbooks are not supported; re-save the file as .xlsx or CSV"}
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, &FormatError{Reason: fmt.Sprintf("unable to open spreadsheet: %v", err)}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Table{}, nil
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
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
