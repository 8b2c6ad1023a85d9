package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbookBytes builds an in-memory xlsx with the given sheets, each a
// slice of rows (first row = headers).
func buildWorkbookBytes(t *testing.T, sheets map[string][][]interface{}, order []string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName(f.GetSheetName(0), name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func sourceHeaders(extra ...string) []interface{} {
	headers := []interface{}{
		"Company", "Name", "Account", "DU ID",
		"Date", "Clock In", "Clock Out", "Hours", "Region",
	}
	for _, e := range extra {
		headers = append(headers, e)
	}
	return headers
}

func TestLoadWorkbook(t *testing.T) {
	data := buildWorkbookBytes(t, map[string][][]interface{}{
		SourceSheetName: {
			sourceHeaders(),
			{"Acme", "Jane", "A1", "D1", "", "", "", "", "ECNB-1"},
		},
		"Notes": {
			{"Comment"},
			{"keep me"},
		},
	}, []string{SourceSheetName, "Notes"})

	wb, err := LoadWorkbook(data)
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 2)

	assert.Equal(t, SourceSheetName, wb.Sheets[0].Name)
	assert.Equal(t, "Notes", wb.Sheets[1].Name)

	src, err := wb.Source()
	require.NoError(t, err)
	assert.Equal(t, "Company", src.Columns[0])
	assert.Len(t, src.Rows, 1)

	notes, ok := wb.Sheet("Notes")
	require.True(t, ok)
	assert.Equal(t, [][]string{{"keep me"}}, notes.Rows)
}

func TestLoadWorkbookTrimsHeaders(t *testing.T) {
	data := buildWorkbookBytes(t, map[string][][]interface{}{
		SourceSheetName: {
			{"Company ", " Name", "Account", " DU ID ", "E", "F", "G", "H", "Region"},
		},
	}, []string{SourceSheetName})

	wb, err := LoadWorkbook(data)
	require.NoError(t, err)

	src, err := wb.Source()
	require.NoError(t, err)
	assert.Equal(t, []string{"Company", "Name", "Account", "DU ID", "E", "F", "G", "H", "Region"}, src.Columns)
}

func TestLoadWorkbookMissingSourceSheet(t *testing.T) {
	data := buildWorkbookBytes(t, map[string][][]interface{}{
		"Other": {{"A"}},
	}, []string{"Other"})

	wb, err := LoadWorkbook(data)
	assert.Nil(t, wb)

	var missing *MissingSourceTableError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, SourceSheetName, missing.Sheet)
}

func TestLoadWorkbookInvalidBytes(t *testing.T) {
	_, err := LoadWorkbook([]byte("not a spreadsheet"))
	assert.Error(t, err)
}
