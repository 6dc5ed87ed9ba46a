package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*logger.ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &logger.ZapLogger{Logger: zap.New(core)}, logs
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		panicValue interface{}
	}{
		{name: "string panic", panicValue: "test panic message"},
		{name: "error panic", panicValue: errors.New("test error panic")},
		{name: "int panic", panicValue: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zl, logs := newObservedLogger()
			e := echo.New()
			e.Use(PanicRecoveryMiddleware(zl))
			e.GET("/panic", func(c echo.Context) error {
				panic(tt.panicValue)
			})

			req := httptest.NewRequest(http.MethodGet, "/panic", nil)
			req.Header.Set(echo.HeaderXRequestID, "req-123")
			req.Header.Set(echo.HeaderAuthorization, "Bearer secret")
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Internal server error", body["error"])
			assert.Equal(t, "req-123", body["request_id"])

			entries := logs.FilterMessage("Panic recovered during request processing").All()
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, "/panic", fields["path"])
			assert.Equal(t, "anonymous", fields["user_id"])
			assert.NotEmpty(t, fields["stack_trace"])
			headers, ok := fields["headers"].(map[string]string)
			require.True(t, ok)
			assert.NotContains(t, headers, "Authorization")
		})
	}
}

func TestPanicRecoveryMiddleware_PassesThrough(t *testing.T) {
	zl, logs := newObservedLogger()
	e := echo.New()
	e.Use(PanicRecoveryMiddleware(zl))
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "fine")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, logs.Len())
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() {
		PanicRecoveryMiddleware(nil)
	})
}

func TestExtractSafeHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer token")
	headers.Set("Cookie", "session=1")
	headers.Set("User-Agent", "test-agent")

	safe := extractSafeHeaders(headers)

	assert.Equal(t, "test-agent", safe["User-Agent"])
	assert.NotContains(t, safe, "Authorization")
	assert.NotContains(t, safe, "Cookie")
}
