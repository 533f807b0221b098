package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/contentgen-api/internal/api/shared"
	"github.com/phrazzld/contentgen-api/internal/platform/logger"
)

// NewRecoverer returns middleware that turns a panic in a downstream handler
// into a 500 JSON error response with the given message and "Unknown error"
// details. http.ErrAbortHandler is re-panicked so net/http can abort the
// connection.
func NewRecoverer(message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				logger.FromContextOrDefault(r.Context(), slog.Default()).
					ErrorContext(r.Context(), "panic while handling request",
						"panic", rec,
						"path", r.URL.Path,
						"method", r.Method,
						"stack", string(debug.Stack()))

				shared.RespondWithJSON(w, r, http.StatusInternalServerError, shared.ErrorResponse{
					Error:   message,
					Details: shared.UnknownErrorDetails,
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
