package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSourceTable(rows ...[]string) *SourceTable {
	return &SourceTable{
		Name: SourceSheetName,
		Columns: []string{
			"Company", "Name", "Account", "DU ID",
			"Date", "Clock In", "Clock Out", "Hours", "Region",
		},
		Rows: rows,
	}
}

// row builds a source row with the classification value in the 9th column.
func row(company, name, account, duid, region string) []string {
	return []string{company, name, account, duid, "", "", "", "", region}
}

func TestFilterCategory(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		category string
		want     [][]string
	}{
		{
			name: "substring match keeps matching rows only",
			rows: [][]string{
				row("Acme", "Jane", "A1", "D1", "ECNB-1"),
				row("Acme", "Bob", "A2", "D2", "ECMW"),
				row("Zen", "Sam", "Z1", "D3", "ECNB-1"),
			},
			category: "ECNB",
			want: [][]string{
				row("Acme", "Jane", "A1", "D1", "ECNB-1"),
				row("Zen", "Sam", "Z1", "D3", "ECNB-1"),
			},
		},
		{
			name: "match is case insensitive",
			rows: [][]string{
				row("Acme", "Jane", "A1", "D1", "ecnb east"),
			},
			category: "ECNB",
			want: [][]string{
				row("Acme", "Jane", "A1", "D1", "ecnb east"),
			},
		},
		{
			name: "blank classification never matches",
			rows: [][]string{
				row("Acme", "Jane", "A1", "D1", ""),
				{"Acme", "Bob", "A2", "D2"}, // short row, no 9th cell
			},
			category: "ECNB",
			want:     nil,
		},
		{
			name: "source order is preserved",
			rows: [][]string{
				row("Zen", "Sam", "Z1", "D3", "ECMW"),
				row("Acme", "Jane", "A1", "D1", "ECMW"),
			},
			category: "ECMW",
			want: [][]string{
				row("Zen", "Sam", "Z1", "D3", "ECMW"),
				row("Acme", "Jane", "A1", "D1", "ECMW"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := testSourceTable(tt.rows...)
			subset, err := FilterCategory(src, tt.category)
			require.NoError(t, err)
			assert.Equal(t, tt.want, subset.Rows)
			assert.Equal(t, src.Columns, subset.Columns)
		})
	}
}

func TestFilterCategoryInsufficientColumns(t *testing.T) {
	src := &SourceTable{
		Name:    SourceSheetName,
		Columns: []string{"Company", "Name", "Account", "DU ID"},
	}

	_, err := FilterCategory(src, "ECNB")

	var insufficient *InsufficientColumnsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 4, insufficient.Have)
	assert.Equal(t, MinSourceColumns, insufficient.Want)
}
