package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"clockreport/internal/exporter"
	"clockreport/internal/infrastructure"
	"clockreport/internal/report"
)

// ReportService runs the report transformation pipeline for one upload.
type ReportService struct {
	logger     *slog.Logger
	metrics    *infrastructure.ReportMetrics
	categories []string
}

// NewReportService creates a report service. A nil categories slice uses the
// default category list; a nil metrics value disables instrumentation.
func NewReportService(logger *slog.Logger, metrics *infrastructure.ReportMetrics, categories []string) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	if len(categories) == 0 {
		categories = report.Categories
	}
	return &ReportService{
		logger:     logger.With(slog.String("component", "report_service")),
		metrics:    metrics,
		categories: categories,
	}
}

// Process turns uploaded spreadsheet bytes into the processed output
// workbook. Stateless: every call loads its own workbook and builds its own
// output, so concurrent calls never share mutable state.
func (s *ReportService) Process(ctx context.Context, data []byte) ([]byte, error) {
	start := time.Now()

	wb, err := report.LoadWorkbook(data)
	if err != nil {
		s.recordFailure(ctx, err)
		return nil, err
	}

	out, err := exporter.NewBuilder(s.logger, s.categories).BuildReport(wb)
	if err != nil {
		s.recordFailure(ctx, err)
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.Processed.Inc()
		s.metrics.Duration.Observe(time.Since(start).Seconds())
	}
	s.logger.InfoContext(ctx, "report processed",
		slog.Int("input_bytes", len(data)),
		slog.Int("output_bytes", len(out)),
		slog.Int("sheets", len(wb.Sheets)),
		slog.String("duration", time.Since(start).String()))
	return out, nil
}

func (s *ReportService) recordFailure(ctx context.Context, err error) {
	reason := failureReason(err)
	if s.metrics != nil {
		s.metrics.Failed.WithLabelValues(reason).Inc()
	}
	s.logger.ErrorContext(ctx, "report processing failed",
		slog.String("reason", reason),
		slog.String("error", err.Error()))
}

// failureReason classifies a pipeline error for the failure counter.
func failureReason(err error) string {
	var (
		missingSheet  *report.MissingSourceTableError
		tooFewCols    *report.InsufficientColumnsError
		missingColumn *report.MissingGroupingColumnError
	)
	switch {
	case errors.As(err, &missingSheet):
		return "missing_source_sheet"
	case errors.As(err, &tooFewCols):
		return "insufficient_columns"
	case errors.As(err, &missingColumn):
		return "missing_grouping_columns"
	default:
		return "invalid_workbook"
	}
}
