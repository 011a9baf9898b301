package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
	"github.com/vfg2006/channel-marketing-api/pkg/log"
)

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func TestLoggingMiddleware_CorrelationHeader(t *testing.T) {
	t.Run("Gera um ID novo", func(t *testing.T) {
		handler := LoggingMiddleware()(okHandler(t, 0))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		_, err := uuid.Parse(rec.Header().Get(CorrelationIDHeader))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Reaproveita o ID do cliente", func(t *testing.T) {
		existing := uuid.New().String()

		handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, existing, log.GetCorrelationID(r.Context()))
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/summary", nil)
		req.Header.Set(CorrelationIDHeader, existing)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, existing, rec.Header().Get(CorrelationIDHeader))
	})
}

func TestLoggingMiddleware_PanicCarriesCorrelationID(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	handler := LoggingMiddleware()(LogPanicMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	correlationID := rec.Header().Get(CorrelationIDHeader)

	var panicEntry, finishedEntry *logrus.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Data["error"] == "boom" {
			panicEntry = entry
		}
		if entry.Data["status_code"] == http.StatusInternalServerError {
			finishedEntry = entry
		}
	}

	require.NotNil(t, panicEntry)
	assert.Equal(t, correlationID, panicEntry.Data["correlation_id"])

	require.NotNil(t, finishedEntry)
	assert.Equal(t, logrus.ErrorLevel, finishedEntry.Level)
	assert.Equal(t, correlationID, finishedEntry.Data["correlation_id"])
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250 µs", formatDuration(250*time.Microsecond))
	assert.Equal(t, "120 ms", formatDuration(120*time.Millisecond))
	assert.Equal(t, "1.50 s", formatDuration(1500*time.Millisecond))
}
