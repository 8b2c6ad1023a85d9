package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clockreport/internal/services"
)

func TestHealthHandler(t *testing.T) {
	handler := NewHealthHandler(services.NewHealthService("test-1.0.0", slog.Default()), slog.Default())

	tests := []struct {
		name       string
		serve      http.HandlerFunc
		wantStatus string
	}{
		{name: "health", serve: handler.HealthCheck, wantStatus: "ok"},
		{name: "ready", serve: handler.ReadinessCheck, wantStatus: "ready"},
		{name: "live", serve: handler.LivenessCheck, wantStatus: "alive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.serve(w, httptest.NewRequest(http.MethodGet, "/", nil))

			require.Equal(t, http.StatusOK, w.Code)

			var status services.HealthStatus
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
			assert.Equal(t, tt.wantStatus, status.Status)
			assert.Equal(t, "test-1.0.0", status.Version)
		})
	}
}

func TestVersionHandler(t *testing.T) {
	handler := NewHealthHandler(services.NewHealthService("test-1.0.0", slog.Default()), slog.Default())

	w := httptest.NewRecorder()
	handler.Version(w, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var info services.VersionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "test-1.0.0", info.Version)
	assert.NotEmpty(t, info.GoVersion)
}
