package handler

import (
	"context"
	stdErrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/candidate-screening/errors"
	"github.com/johnquangdev/candidate-screening/internal/adapter/dto/common"
	"github.com/johnquangdev/candidate-screening/internal/test"
	usecaseErrors "github.com/johnquangdev/candidate-screening/internal/usecase/errors"
	"github.com/johnquangdev/candidate-screening/pkg/config"
)

func TestHealthCheck(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{Environment: "test"}}
	healthy := func(context.Context) error { return nil }

	e := echo.New()
	NewRouter(cfg, nil, nil, nil, nil, map[string]HealthCheck{"database": healthy}).Setup(e)

	rec := test.Code(t, e, httptest.NewRequest(http.MethodGet, "/health", nil), http.StatusOK)
	resp := test.Decode[common.HealthResponse](t, rec)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "test", resp.Environment)
	assert.Equal(t, map[string]string{"database": "ok"}, resp.Checks)

	e = echo.New()
	NewRouter(cfg, nil, nil, nil, nil, map[string]HealthCheck{
		"database": healthy,
		"storage":  func(context.Context) error { return stdErrors.New("bucket missing") },
	}).Setup(e)

	rec = test.Code(t, e, httptest.NewRequest(http.MethodGet, "/health", nil), http.StatusServiceUnavailable)
	resp = test.Decode[common.HealthResponse](t, rec)
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "bucket missing", resp.Checks["storage"])
}

func TestRouter_NotImplementedWithoutHandlers(t *testing.T) {
	e := echo.New()
	NewRouter(nil, nil, nil, nil, nil, nil).Setup(e)

	test.Code(t, e, httptest.NewRequest(http.MethodPost, "/v1/candidates", nil), http.StatusNotImplemented)
	test.Code(t, e, httptest.NewRequest(http.MethodGet, "/v1/admin/candidates", nil), http.StatusNotImplemented)
}

func TestToAppError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   errors.ErrorCode
	}{
		{"validation", &usecaseErrors.ValidationError{Message: "Please answer all questions", Fields: []string{"question2"}}, http.StatusBadRequest, errors.ErrorCode_VALIDATION_FAILED},
		{"candidate", fmt.Errorf("load: %w", usecaseErrors.ErrCandidateNotFound), http.StatusNotFound, errors.ErrorCode_CANDIDATE_NOT_FOUND},
		{"analysis exists", usecaseErrors.ErrAnalysisExists, http.StatusConflict, errors.ErrorCode_ANALYSIS_ALREADY_EXISTS},
		{"malformed", fmt.Errorf("%w: missing traitScores", usecaseErrors.ErrMalformedUpstream), http.StatusBadGateway, errors.ErrorCode_AI_MALFORMED_RESPONSE},
		{"unavailable", fmt.Errorf("%w: timeout", usecaseErrors.ErrAnalysisUnavailable), http.StatusBadGateway, errors.ErrorCode_AI_ANALYSIS_FAILED},
		{"transcription", usecaseErrors.ErrTranscriptionFailed, http.StatusBadGateway, errors.ErrorCode_AI_TRANSCRIPTION_FAILED},
		{"stopped", usecaseErrors.ErrDispatcherStopped, http.StatusServiceUnavailable, errors.ErrorCode_AI_SERVICE_UNAVAILABLE},
		{"storage", usecaseErrors.ErrStorage, http.StatusInternalServerError, errors.ErrorCode_INTEGRATION_STORAGE_FAILED},
		{"draft store", fmt.Errorf("%w: redis down", usecaseErrors.ErrDraftStore), http.StatusInternalServerError, errors.ErrorCode_INTEGRATION_CACHE_FAILED},
		{"app error", errors.ErrForbidden("admin role required"), http.StatusForbidden, errors.ErrorCode_FORBIDDEN},
		{"unknown", stdErrors.New("boom"), http.StatusInternalServerError, errors.ErrorCode_INTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := ToAppError(tt.err, "id-1")
			assert.Equal(t, tt.status, appErr.HTTPCode)
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}
