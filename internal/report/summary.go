package report

import "sort"

// SummaryRow is the count of distinct Name values for one Company within a
// filtered subset.
type SummaryRow struct {
	Company string
	Count   int
}

// Summarize groups the raw (pre-deduplication) subset rows by Company and
// counts distinct Name values per group. Companies are returned sorted
// ascending. The grand total is the sum of the per-company counts, which can
// exceed the distinct Name count across the whole subset when a name appears
// under multiple companies.
//
// Rows with a blank Company are excluded and blank Names do not count toward
// a distinct total, matching the source report's grouping semantics.
func Summarize(subset *SourceTable) ([]SummaryRow, int, error) {
	companyIdx := subset.columnIndex("Company")
	nameIdx := subset.columnIndex("Name")
	var missing []string
	if companyIdx < 0 {
		missing = append(missing, "Company")
	}
	if nameIdx < 0 {
		missing = append(missing, "Name")
	}
	if len(missing) > 0 {
		return nil, 0, &MissingGroupingColumnError{Columns: missing}
	}

	names := make(map[string]map[string]struct{})
	for _, row := range subset.Rows {
		company := cell(row, companyIdx)
		if company == "" {
			continue
		}
		if names[company] == nil {
			names[company] = make(map[string]struct{})
		}
		// A company whose rows all have blank names still appears in the
		// summary, with a distinct count of zero.
		if name := cell(row, nameIdx); name != "" {
			names[company][name] = struct{}{}
		}
	}

	companies := make([]string, 0, len(names))
	for company := range names {
		companies = append(companies, company)
	}
	sort.Strings(companies)

	rows := make([]SummaryRow, 0, len(companies))
	grandTotal := 0
	for _, company := range companies {
		count := len(names[company])
		rows = append(rows, SummaryRow{Company: company, Count: count})
		grandTotal += count
	}
	return rows, grandTotal, nil
}
