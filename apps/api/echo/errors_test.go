package echoapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/lesson"
)

type recordingLogger struct {
	errors []string
}

func (l *recordingLogger) Debug(string, ...interface{}) {}
func (l *recordingLogger) Info(string, ...interface{})  {}
func (l *recordingLogger) Warn(string, ...interface{})  {}
func (l *recordingLogger) Error(msg string, _ ...interface{}) {
	l.errors = append(l.errors, msg)
}
func (l *recordingLogger) Fatal(string, ...interface{}) {}

func TestAppHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
		wantLogs int
	}{
		{
			name:     "domain error",
			err:      errors.Wrap(lesson.ErrNotFound, "take"),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"lesson not found"}`,
		},
		{
			name:     "validation error",
			err:      core.NewValidationError(nil, core.FieldError{Field: "month", Error: "invalid"}),
			wantCode: http.StatusBadRequest,
			wantBody: `{"month":"invalid"}`,
		},
		{
			name:     "unexpected error is logged and hidden",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal Server Error"}`,
			wantLogs: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := new(recordingLogger)
			e := echo.New()
			e.HTTPErrorHandler = newAppHTTPErrorHandler(logger, core.NewTranslator())

			rec := httptest.NewRecorder()
			ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			e.HTTPErrorHandler(tt.err, ctx)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Len(t, logger.errors, tt.wantLogs)
		})
	}
}
