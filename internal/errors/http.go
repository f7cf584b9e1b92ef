package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/pokeknower/pokeknower/internal/observability"
	"github.com/pokeknower/pokeknower/internal/server/middleware"
)

// errorResponse is the wire shape for all failed requests.
type errorResponse struct {
	Error *Envelope `json:"error"`
}

// RespondWithError writes err as a JSON error envelope. Non-envelope errors
// are hidden behind a generic 500 so internals never leak to clients.
func RespondWithError(w http.ResponseWriter, r *http.Request, err error) {
	var envelope *Envelope
	if !errors.As(err, &envelope) {
		envelope = NewInternalError("An unexpected error occurred")
	}

	if envelope.CorrelationID == "" {
		envelope.CorrelationID = middleware.GetRequestID(r.Context())
	}

	status := HTTPStatus(envelope.Code)
	if status >= http.StatusInternalServerError && observability.ServerLogger != nil {
		observability.ServerLogger.Error("request failed",
			zap.String("code", envelope.Code),
			zap.String("message", envelope.Message),
			zap.String("path", r.URL.Path),
			zap.String("correlation_id", envelope.CorrelationID),
			zap.Error(err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: envelope})
}
