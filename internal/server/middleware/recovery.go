package middleware

import (
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// errInternal is deliberately opaque; the responder maps any non-envelope
// error to a 500 INTERNAL_ERROR envelope.
var errInternal = errors.New("internal server error")

// Recovery converts panics into 500 responses so a single bad request can
// never take the process down.
func Recovery(logger *zap.Logger, respond func(http.ResponseWriter, *http.Request, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("path", r.URL.Path),
						zap.String("request_id", GetRequestID(r.Context())),
						zap.Stack("stack"))
					respond(w, r, errInternal)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
