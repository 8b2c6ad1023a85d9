package exporter

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"clockreport/internal/report"
)

const (
	dataSheetPrefix  = "Data "
	pivotSheetPrefix = "Pivot "

	// pivotHeaderRow is the 1-based row the pivot headers are written on.
	pivotHeaderRow = 3

	// summaryColumn is the 1-based column of the summary block (column G),
	// two columns to the right of the grouping columns.
	summaryColumn = 7
)

// styleSet holds the style IDs used by the pivot sheets.
type styleSet struct {
	header    int
	data      int
	duplicate int
}

// Builder assembles the output workbook from a loaded upload.
type Builder struct {
	logger     *slog.Logger
	categories []string
}

// NewBuilder creates a workbook builder. A nil categories slice uses the
// default category list.
func NewBuilder(logger *slog.Logger, categories []string) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	if len(categories) == 0 {
		categories = report.Categories
	}
	return &Builder{
		logger:     logger.With(slog.String("component", "exporter")),
		categories: categories,
	}
}

// BuildReport produces the complete output workbook bytes: original sheets
// first, then the per-category data and pivot sheets. All validation happens
// before any bytes are emitted; on error no partial output is returned.
func (b *Builder) BuildReport(wb *report.Workbook) ([]byte, error) {
	src, err := wb.Source()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	styles, err := newStyleSet(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create styles: %w", err)
	}

	for i, sheet := range wb.Sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return nil, fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %q: %w", sheet.Name, err)
		}
		if err := writeTable(f, sheet.Name, sheet.Columns, sheet.Rows); err != nil {
			return nil, err
		}
	}

	for _, category := range b.categories {
		subset, err := report.FilterCategory(src, category)
		if err != nil {
			return nil, err
		}
		if err := b.writeDataSheet(f, styles, category, subset); err != nil {
			return nil, err
		}
		if err := b.writePivotSheet(f, styles, category, subset); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeTable writes headers on row 1 and data rows beneath, unstyled.
func writeTable(f *excelize.File, sheet string, columns []string, rows [][]string) error {
	if len(columns) == 0 {
		return nil
	}
	if err := setRow(f, sheet, 1, 1, columns); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, 1, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

// setRow writes values starting at (col, row), both 1-based.
func setRow(f *excelize.File, sheet string, col, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d of %q: %w", row, sheet, err)
	}
	return nil
}

func (b *Builder) writeDataSheet(f *excelize.File, styles styleSet, category string, subset *report.SourceTable) error {
	sheet := dataSheetPrefix + category
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}
	if err := writeTable(f, sheet, subset.Columns, subset.Rows); err != nil {
		return err
	}
	if err := styleRange(f, sheet, 1, 1, len(subset.Columns), 1, styles.header); err != nil {
		return err
	}

	b.logger.Info("data sheet written",
		slog.String("category", category),
		slog.Int("rows", len(subset.Rows)))
	return nil
}

func (b *Builder) writePivotSheet(f *excelize.File, styles styleSet, category string, subset *report.SourceTable) error {
	sorted, display, err := report.BuildPivot(subset)
	if err != nil {
		return err
	}
	flags := report.FlagDuplicates(sorted)
	summary, grandTotal, err := report.Summarize(subset)
	if err != nil {
		return err
	}

	sheet := pivotSheetPrefix + category
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}

	widths := []float64{25, 20, 15, 15}
	for i, w := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, w); err != nil {
			return err
		}
	}

	// Grouping headers on the fixed header row.
	if err := setRow(f, sheet, 1, pivotHeaderRow, report.GroupingColumns); err != nil {
		return err
	}
	if err := styleRange(f, sheet, 1, pivotHeaderRow, len(report.GroupingColumns), pivotHeaderRow, styles.header); err != nil {
		return err
	}

	// Masked display rows, duplicate DU IDs highlighted.
	duplicates := 0
	for i, d := range display {
		rowNum := pivotHeaderRow + 1 + i
		if err := setRow(f, sheet, 1, rowNum, []string{d.Company, d.Name, d.Account, d.DUID}); err != nil {
			return err
		}
		if err := styleRange(f, sheet, 1, rowNum, len(report.GroupingColumns), rowNum, styles.data); err != nil {
			return err
		}
		if flags[i] {
			duplicates++
			if err := styleRange(f, sheet, len(report.GroupingColumns), rowNum, len(report.GroupingColumns), rowNum, styles.duplicate); err != nil {
				return err
			}
		}
	}

	if err := b.writeSummaryBlock(f, styles, sheet, summary, grandTotal); err != nil {
		return err
	}

	b.logger.Info("pivot sheet written",
		slog.String("category", category),
		slog.Int("pivot_rows", len(sorted)),
		slog.Int("duplicates", duplicates),
		slog.Int("companies", len(summary)),
		slog.Int("grand_total", grandTotal))
	return nil
}

// writeSummaryBlock writes the company summary at the fixed offset to the
// right of the grouping columns, ending with the grand total row.
func (b *Builder) writeSummaryBlock(f *excelize.File, styles styleSet, sheet string, summary []report.SummaryRow, grandTotal int) error {
	for i, w := range []float64{25, 15} {
		name, err := excelize.ColumnNumberToName(summaryColumn + i)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, w); err != nil {
			return err
		}
	}

	if err := setRow(f, sheet, summaryColumn, pivotHeaderRow, []string{"Company", "Count of Name"}); err != nil {
		return err
	}
	if err := styleRange(f, sheet, summaryColumn, pivotHeaderRow, summaryColumn+1, pivotHeaderRow, styles.header); err != nil {
		return err
	}

	for i, row := range summary {
		rowNum := pivotHeaderRow + 1 + i
		cell, err := excelize.CoordinatesToCellName(summaryColumn, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{row.Company, row.Count}); err != nil {
			return err
		}
		if err := styleRange(f, sheet, summaryColumn, rowNum, summaryColumn+1, rowNum, styles.data); err != nil {
			return err
		}
	}

	totalRow := pivotHeaderRow + 1 + len(summary)
	cell, err := excelize.CoordinatesToCellName(summaryColumn, totalRow)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &[]interface{}{"Grand Total", grandTotal}); err != nil {
		return err
	}
	return styleRange(f, sheet, summaryColumn, totalRow, summaryColumn+1, totalRow, styles.header)
}

// styleRange applies a style to the rectangle between two 1-based
// coordinates.
func styleRange(f *excelize.File, sheet string, startCol, startRow, endCol, endRow, styleID int) error {
	start, err := excelize.CoordinatesToCellName(startCol, startRow)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(endCol, endRow)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, start, end, styleID)
}

func newStyleSet(f *excelize.File) (styleSet, error) {
	borders := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"D9E1F2"}, Pattern: 1},
		Border:    borders,
		Alignment: &excelize.Alignment{Vertical: "top"},
	})
	if err != nil {
		return styleSet{}, err
	}

	data, err := f.NewStyle(&excelize.Style{Border: borders})
	if err != nil {
		return styleSet{}, err
	}

	duplicate, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Color: "000000"},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Border: borders,
	})
	if err != nil {
		return styleSet{}, err
	}

	return styleSet{header: header, data: data, duplicate: duplicate}, nil
}
