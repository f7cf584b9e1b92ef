// Package errors defines the application error envelope returned on every
// failed HTTP request, with stable machine-readable codes.
package errors

import "net/http"

// Envelope is a structured application error.
type Envelope struct {
	Code          string         `json:"code"`
	Message       string         `json:"message"`
	Details       map[string]any `json:"details,omitempty"`
	CorrelationID string         `json:"correlation_id,omitempty"`
}

// Error implements the error interface.
func (e *Envelope) Error() string {
	return e.Code + ": " + e.Message
}

// WithDetails attaches structured detail fields.
func (e *Envelope) WithDetails(details map[string]any) *Envelope {
	e.Details = details
	return e
}

// WithCorrelationID attaches the request correlation ID.
func (e *Envelope) WithCorrelationID(id string) *Envelope {
	e.CorrelationID = id
	return e
}

// User errors (400-level).

func NewInvalidInputError(message string) *Envelope {
	return &Envelope{Code: "INVALID_INPUT", Message: message}
}

func NewNotFoundError(message string) *Envelope {
	return &Envelope{Code: "NOT_FOUND", Message: message}
}

func NewMethodNotAllowedError(message string) *Envelope {
	return &Envelope{Code: "METHOD_NOT_ALLOWED", Message: message}
}

func NewValidationError(message string) *Envelope {
	return &Envelope{Code: "VALIDATION_FAILED", Message: message}
}

// Server errors (500-level).

func NewInternalError(message string) *Envelope {
	return &Envelope{Code: "INTERNAL_ERROR", Message: message}
}

func NewDatabaseError(message string) *Envelope {
	return &Envelope{Code: "DATABASE_ERROR", Message: message}
}

func NewServiceUnavailableError(message string) *Envelope {
	return &Envelope{Code: "SERVICE_UNAVAILABLE", Message: message}
}

// HTTPStatus maps an envelope code to its HTTP status.
func HTTPStatus(code string) int {
	switch code {
	case "INVALID_INPUT", "VALIDATION_FAILED":
		return http.StatusBadRequest
	case "NOT_FOUND":
		return http.StatusNotFound
	case "METHOD_NOT_ALLOWED":
		return http.StatusMethodNotAllowed
	case "SERVICE_UNAVAILABLE":
		return http.StatusServiceUnavailable
	case "INTERNAL_ERROR", "DATABASE_ERROR":
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
