package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/vfg2006/channel-marketing-api/pkg/log"
)

// CorrelationIDHeader devolve ao cliente o ID usado nos logs da requisição
const CorrelationIDHeader = "X-Correlation-ID"

const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra início e fim de cada requisição com o ID de correlação.
// Em desenvolvimento o pacote log descarta os campos de rastreio.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithExistingCorrelationID(r.Context(), r.Header.Get(CorrelationIDHeader))
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
			})

			logger.WithFields(log.Fields{
				"remote_addr":    r.RemoteAddr,
				"query":          r.URL.RawQuery,
				"user_agent":     r.UserAgent(),
				"content_length": r.ContentLength,
			}).Info("→ requisição iniciada")

			lrw := newLoggingResponseWriter(w)
			start := time.Now()

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(start)
			finished := logger.WithFields(log.Fields{
				"status_code": lrw.statusCode,
				"duration_ms": elapsed.Milliseconds(),
			})
			message := fmt.Sprintf("requisição finalizada em %s", formatDuration(elapsed))

			switch {
			case lrw.statusCode >= http.StatusInternalServerError:
				finished.Error("✗ " + message)
			case lrw.statusCode >= http.StatusBadRequest:
				finished.Warn("✗ " + message)
			default:
				finished.Info("✓ " + message)
			}

			if elapsed > slowRequestThreshold {
				finished.Warn("⚠ requisição lenta")
			}
		})
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter guarda o status escrito pelo handler
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}
