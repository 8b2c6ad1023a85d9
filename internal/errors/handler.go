package errors

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"clockreport/internal/report"
)

// ErrorHandler provides centralized error handling for the HTTP transport.
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorHandler{
		logger: logger.With(slog.String("component", "error_handler")),
	}
}

// HandleError maps any error onto an APIError and responds with it.
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	apiErr := ToAPIError(err)

	h.logger.ErrorContext(r.Context(), "request failed",
		slog.String("error", err.Error()),
		slog.String("error_code", apiErr.ErrorCode),
		slog.Int("status", apiErr.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	if renderErr := render.Render(w, r, NewErrorResponse(apiErr)); renderErr != nil {
		h.logger.ErrorContext(r.Context(), "failed to render error response",
			slog.String("error", renderErr.Error()))
	}
}

// ToAPIError converts a pipeline or transport error into an APIError.
// Report validation failures keep their human-readable message; anything
// unrecognized becomes a 400 invalid-workbook response since the pipeline
// only fails on bad input.
func ToAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var (
		missingSheet  *report.MissingSourceTableError
		tooFewCols    *report.InsufficientColumnsError
		missingColumn *report.MissingGroupingColumnError
	)
	switch {
	case errors.As(err, &missingSheet):
		return NewWithDetails(ErrMissingSourceSheet.StatusCode, ErrMissingSourceSheet.ErrorCode, missingSheet.Error(), missingSheet.Sheet)
	case errors.As(err, &tooFewCols):
		return NewWithDetails(ErrInsufficientColumns.StatusCode, ErrInsufficientColumns.ErrorCode, tooFewCols.Error(), map[string]int{
			"have": tooFewCols.Have,
			"want": tooFewCols.Want,
		})
	case errors.As(err, &missingColumn):
		return NewWithDetails(ErrMissingGroupingColumns.StatusCode, ErrMissingGroupingColumns.ErrorCode, missingColumn.Error(), missingColumn.Columns)
	default:
		return NewWithDetails(ErrInvalidWorkbook.StatusCode, ErrInvalidWorkbook.ErrorCode, ErrInvalidWorkbook.Message, err.Error())
	}
}
