package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagDuplicates(t *testing.T) {
	tests := []struct {
		name string
		rows []PivotRow
		want []bool
	}{
		{
			name: "unique DU IDs are not flagged",
			rows: []PivotRow{
				{Company: "Acme", DUID: "D1"},
				{Company: "Acme", DUID: "D2"},
			},
			want: []bool{false, false},
		},
		{
			name: "shared DU ID flags every occurrence",
			rows: []PivotRow{
				{Company: "Acme", DUID: "D9"},
				{Company: "Beta", DUID: "D9"},
				{Company: "Zen", DUID: "D9"},
				{Company: "Zen", DUID: "D1"},
			},
			want: []bool{true, true, true, false},
		},
		{
			name: "empty set",
			rows: nil,
			want: []bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FlagDuplicates(tt.rows)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestFlagDuplicatesCountInvariant: the number of flagged rows equals the
// number of DU ID values with multiplicity > 1, weighted by multiplicity.
func TestFlagDuplicatesCountInvariant(t *testing.T) {
	rows := []PivotRow{
		{DUID: "D1"}, {DUID: "D1"},
		{DUID: "D2"},
		{DUID: "D3"}, {DUID: "D3"}, {DUID: "D3"},
	}

	flags := FlagDuplicates(rows)

	flagged := 0
	for _, f := range flags {
		if f {
			flagged++
		}
	}
	assert.Equal(t, 5, flagged) // 2x D1 + 3x D3
}
