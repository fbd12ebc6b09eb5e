// Package ingest reads raw Department of Labor disclosure files and turns
// them into filtered, year-tagged canonical tables plus per-year statistics.
package ingest

import (
	"github.com/xuri/excelize/v2"

	"github.com/agentstation/permclean/pkg/errors"
)

// RawTable is the untyped contents of one source file: a header row and
// data rows of plain strings. It exists only during ingestion of that file.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// ReadXLSX reads the first sheet of an XLSX file into a RawTable. The
// first row is the header; short data rows are padded with empty cells.
func ReadXLSX(path string) (*RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewParseError("xlsx", path, "no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	if len(rows) == 0 {
		return nil, errors.NewParseError("xlsx", path, "no header row", nil)
	}

	raw := &RawTable{Columns: rows[0]}
	for _, row := range rows[1:] {
		if len(row) < len(raw.Columns) {
			padded := make([]string, len(raw.Columns))
			copy(padded, row)
			row = padded
		}
		raw.Rows = append(raw.Rows, row)
	}
	return raw, nil
}
