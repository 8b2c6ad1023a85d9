// Package report implements the clock detail report transformation pipeline.
// It consolidates workbook loading, category filtering, hierarchical
// deduplication, duplicate detection, and summary aggregation into a cohesive
// package that turns a raw clock detail export into the data required by the
// output workbook.
//
// # Architecture
//
// The package is organized into five main components:
//
// 1. Loader: Reads uploaded spreadsheet bytes into named source tables
// 2. Filter: Selects the rows belonging to one category code
// 3. Pivot: Deduplicates, sorts, and masks the four grouping columns
// 4. Duplicates: Flags DU IDs that occur more than once per category
// 5. Summary: Counts distinct names per company with a grand total
//
// # Usage
//
//	wb, err := report.LoadWorkbook(data)
//	if err != nil {
//	    return err
//	}
//	src, _ := wb.Source()
//	for _, category := range report.Categories {
//	    subset, err := report.FilterCategory(src, category)
//	    if err != nil {
//	        return err
//	    }
//	    sorted, display, err := report.BuildPivot(subset)
//	    ...
//	}
//
// # Data Flow
//
//	Upload bytes → Loader → SourceTable → Filter → Pivot/Duplicates/Summary → Emitter
//
// # Error Handling
//
// All validation failures are typed errors (MissingSourceTableError,
// InsufficientColumnsError, MissingGroupingColumnError) detected before any
// output is produced. The pipeline is all-or-nothing: a failure in one
// category aborts the whole run.
//
// The classification column is addressed by fixed position (the 9th column)
// while the grouping columns are addressed by name. This mirrors the source
// report contract exactly; if the export ever reorders its columns the
// positional lookup will silently select the wrong field. Kept as-is on
// purpose, see DESIGN.md.
package report
