package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	h "devevents/internal/delivery/http/helpers"
)

// Recoverer turns a panic in next into a 500 response and logs the stack.
func Recoverer(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wrapped := wrapResponseWriter(w)
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.ErrorContext(r.Context(), "panic serving request",
				"path", r.URL.Path, "method", r.Method, "panic", rec, "stack", string(debug.Stack()))
			if !wrapped.wroteHeader {
				h.WriteJSONError(wrapped, http.StatusInternalServerError, h.ErrCodeInternalError, "internal server error")
			}
		}()
		next.ServeHTTP(wrapped, r)
	})
}
