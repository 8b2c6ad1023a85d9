package report

import "strings"

// FilterCategory selects the rows of the source table whose classification
// value (the 9th column) contains the category code, case-insensitively.
// Blank or missing classification values never match. Row order is
// preserved. The returned table shares the source's columns.
func FilterCategory(src *SourceTable, category string) (*SourceTable, error) {
	if len(src.Columns) < MinSourceColumns {
		return nil, &InsufficientColumnsError{Have: len(src.Columns), Want: MinSourceColumns}
	}

	needle := strings.ToLower(category)
	subset := &SourceTable{
		Name:    src.Name,
		Columns: src.Columns,
	}
	for _, row := range src.Rows {
		value := strings.ToLower(cell(row, classificationColumn))
		if value == "" {
			continue
		}
		if strings.Contains(value, needle) {
			subset.Rows = append(subset.Rows, row)
		}
	}
	return subset, nil
}
