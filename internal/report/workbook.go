package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	// SourceSheetName is the sheet the clock detail export must contain.
	SourceSheetName = "Clock Detail Report"

	// MinSourceColumns is the minimum column count required by the
	// positional classification contract.
	MinSourceColumns = 9

	// classificationColumn is the zero-based index of the category code
	// column (column I in the export).
	classificationColumn = 8
)

// Categories lists the category codes processed per run, in output order.
var Categories = []string{"ECNB", "ECMW"}

// SourceTable is one sheet of the uploaded workbook: trimmed headers plus
// data rows in original order. Immutable after load.
type SourceTable struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Workbook holds every sheet of the upload in document order.
type Workbook struct {
	Sheets []*SourceTable
}

// Sheet returns the table with the given name.
func (w *Workbook) Sheet(name string) (*SourceTable, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Source returns the clock detail source table.
func (w *Workbook) Source() (*SourceTable, error) {
	if s, ok := w.Sheet(SourceSheetName); ok {
		return s, nil
	}
	return nil, &MissingSourceTableError{Sheet: SourceSheetName}
}

// LoadWorkbook parses uploaded spreadsheet bytes into a Workbook, preserving
// every sheet present in the input. Headers are trimmed of surrounding
// whitespace before any downstream lookup. Fails when the required source
// sheet is absent.
func LoadWorkbook(data []byte) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	wb := &Workbook{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}

		table := &SourceTable{Name: name}
		if len(rows) > 0 {
			table.Columns = make([]string, len(rows[0]))
			for i, h := range rows[0] {
				table.Columns[i] = strings.TrimSpace(h)
			}
			table.Rows = rows[1:]
		}
		wb.Sheets = append(wb.Sheets, table)
	}

	if _, ok := wb.Sheet(SourceSheetName); !ok {
		return nil, &MissingSourceTableError{Sheet: SourceSheetName}
	}
	return wb, nil
}

// cell returns the value at the given column index, or "" when the row is
// shorter than the index (excelize trims trailing blanks).
func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// columnIndex returns the position of a named column, or -1.
func (t *SourceTable) columnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}
