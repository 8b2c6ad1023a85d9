package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apierrors "clockreport/internal/errors"
	"clockreport/internal/report"
	"clockreport/internal/services"
)

func newTestHandler(maxUpload int64) *ReportHandler {
	logger := slog.Default()
	return NewReportHandler(
		services.NewReportService(logger, nil, nil),
		logger,
		apierrors.NewErrorHandler(logger),
		maxUpload,
	)
}

func buildUploadBytes(t *testing.T, sheetName string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName(f.GetSheetName(0), sheetName))
	headers := []interface{}{
		"Company", "Name", "Account", "DU ID",
		"Date", "Clock In", "Clock Out", "Hours", "Region",
	}
	require.NoError(t, f.SetSheetRow(sheetName, "A1", &headers))
	row := []interface{}{"Acme", "Jane", "A1", "D1", "", "", "", "", "ECNB"}
	require.NoError(t, f.SetSheetRow(sheetName, "A2", &row))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func multipartUpload(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestGenerateReport(t *testing.T) {
	handler := newTestHandler(20 << 20)
	body, contentType := multipartUpload(t, uploadField, "clockreport.xlsx", buildUploadBytes(t, report.SourceSheetName))

	r := httptest.NewRequest(http.MethodPost, "/api/reports", body)
	r.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	handler.GenerateReport(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), OutputFilename)

	out, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "Pivot ECNB")
}

func TestGenerateReportMissingFile(t *testing.T) {
	handler := newTestHandler(20 << 20)
	body, contentType := multipartUpload(t, "wrong_field", "clockreport.xlsx", []byte("x"))

	r := httptest.NewRequest(http.MethodPost, "/api/reports", body)
	r.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	handler.GenerateReport(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "MISSING_UPLOAD", resp.Error.ErrorCode)
}

func TestGenerateReportMissingSourceSheet(t *testing.T) {
	handler := newTestHandler(20 << 20)
	body, contentType := multipartUpload(t, uploadField, "other.xlsx", buildUploadBytes(t, "Wrong Sheet"))

	r := httptest.NewRequest(http.MethodPost, "/api/reports", body)
	r.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	handler.GenerateReport(w, r)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "MISSING_SOURCE_SHEET", resp.Error.ErrorCode)
}

func TestGenerateReportUploadTooLarge(t *testing.T) {
	handler := newTestHandler(64) // tiny cap
	body, contentType := multipartUpload(t, uploadField, "big.xlsx", bytes.Repeat([]byte("a"), 4096))

	r := httptest.NewRequest(http.MethodPost, "/api/reports", body)
	r.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	handler.GenerateReport(w, r)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRoutes(t *testing.T) {
	handler := newTestHandler(20 << 20)
	srv := httptest.NewServer(handler.Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	// GET is not routed; only POST generates reports.
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
