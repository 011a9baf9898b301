package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
	"github.com/vfg2006/channel-marketing-api/pkg/log"
)

// LogPanicMiddleware recupera panics dos handlers e responde SRV_001.
// Deve rodar dentro do LoggingMiddleware para herdar o ID de correlação.
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				stack := debug.Stack()
				logger := log.ForContext(r.Context()).WithFields(log.Fields{
					"error":  recovered,
					"method": r.Method,
					"path":   r.URL.Path,
				})

				if log.IsDevelopment() {
					logger.Error("❌ panic na aplicação")
					fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n", stack)
				} else {
					logger.WithField("stack_trace", string(stack)).Error("panic na aplicação")
				}

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
