package report

// FlagDuplicates reports, for each row of the deduplicated set, whether its
// DU ID occurs in more than one row. Computed over the full sorted set per
// category, independent of display masking: a masked cell still carries the
// flag inherited from its row's actual DU ID.
func FlagDuplicates(sorted []PivotRow) []bool {
	counts := make(map[string]int, len(sorted))
	for _, row := range sorted {
		counts[row.DUID]++
	}

	flags := make([]bool, len(sorted))
	for i, row := range sorted {
		flags[i] = counts[row.DUID] > 1
	}
	return flags
}
