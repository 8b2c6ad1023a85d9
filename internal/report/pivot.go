package report

import "sort"

// GroupingColumns are the four columns the pivot view is built from, in
// precedence order.
var GroupingColumns = []string{"Company", "Name", "Account", "DU ID"}

// PivotRow is one unique combination of the four grouping columns. Missing
// cells are represented as the empty string.
type PivotRow struct {
	Company string
	Name    string
	Account string
	DUID    string
}

func (p PivotRow) values() [4]string {
	return [4]string{p.Company, p.Name, p.Account, p.DUID}
}

// less orders rows lexicographically by (Company, Name, Account, DU ID),
// ties broken by later columns. Total and strict for distinct rows.
func (p PivotRow) less(o PivotRow) bool {
	a, b := p.values(), o.values()
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// DisplayRow is the masked presentation form of a PivotRow. A cell is blank
// when its entire ancestor-column chain matches the preceding row.
type DisplayRow struct {
	Company string
	Name    string
	Account string
	DUID    string
}

// BuildPivot projects the subset onto the grouping columns, collapses exact
// duplicate tuples, sorts the result, and derives the masked display rows.
// Running it twice on the same subset yields identical output.
func BuildPivot(subset *SourceTable) ([]PivotRow, []DisplayRow, error) {
	indices := make([]int, len(GroupingColumns))
	var missing []string
	for i, name := range GroupingColumns {
		indices[i] = subset.columnIndex(name)
		if indices[i] < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, nil, &MissingGroupingColumnError{Columns: missing}
	}

	seen := make(map[PivotRow]struct{}, len(subset.Rows))
	rows := make([]PivotRow, 0, len(subset.Rows))
	for _, row := range subset.Rows {
		p := PivotRow{
			Company: cell(row, indices[0]),
			Name:    cell(row, indices[1]),
			Account: cell(row, indices[2]),
			DUID:    cell(row, indices[3]),
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		rows = append(rows, p)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].less(rows[j]) })

	return rows, maskRows(rows), nil
}

// maskRows walks the sorted rows carrying the previous row as an explicit
// accumulator. A value is hidden only while the chain of columns before it
// is unchanged from the immediately preceding row; once any column differs,
// every column at or after it is shown in full.
func maskRows(sorted []PivotRow) []DisplayRow {
	display := make([]DisplayRow, 0, len(sorted))
	var prev [4]string
	havePrev := false

	for _, row := range sorted {
		cur := row.values()
		var out [4]string
		chain := havePrev
		for i := range cur {
			if chain && cur[i] == prev[i] {
				continue
			}
			out[i] = cur[i]
			chain = false
		}
		display = append(display, DisplayRow{
			Company: out[0],
			Name:    out[1],
			Account: out[2],
			DUID:    out[3],
		})
		prev = cur
		havePrev = true
	}
	return display
}
