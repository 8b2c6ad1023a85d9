// Package exporter assembles the output workbook for the clock report
// pipeline.
//
// The Builder writes, in order: every original sheet of the upload
// (name, column order, and row order preserved), then for each category code
// a "Data {code}" sheet with the raw filtered rows and a "Pivot {code}"
// sheet with the masked pivot view, duplicate highlighting, and the
// company summary block.
//
// Example usage:
//
//	builder := exporter.NewBuilder(logger, nil)
//	out, err := builder.BuildReport(wb)
//	if err != nil {
//	    return err
//	}
//	// out is a complete xlsx file, ready to hand to the client.
//
// Cell styling beyond the header/duplicate/summary distinction is a
// presentation choice, not a contract.
package exporter
