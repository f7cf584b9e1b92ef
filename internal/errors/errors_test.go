package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus("INVALID_INPUT"))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus("VALIDATION_FAILED"))
	assert.Equal(t, http.StatusNotFound, HTTPStatus("NOT_FOUND"))
	assert.Equal(t, http.StatusMethodNotAllowed, HTTPStatus("METHOD_NOT_ALLOWED"))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus("SERVICE_UNAVAILABLE"))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus("DATABASE_ERROR"))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus("SOMETHING_ELSE"))
}

func TestEnvelopeError(t *testing.T) {
	err := NewNotFoundError("Pikachu not found")
	assert.Equal(t, "NOT_FOUND: Pikachu not found", err.Error())

	var envelope *Envelope
	wrapped := fmt.Errorf("handler: %w", err)
	require.True(t, stderrors.As(wrapped, &envelope))
	assert.Equal(t, "NOT_FOUND", envelope.Code)
}

func TestRespondWithErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/pokemon/mewtwo", nil)

	RespondWithError(rec, req, NewNotFoundError("no such species"))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Error *Envelope `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.Equal(t, "no such species", body.Error.Message)
}

func TestRespondWithErrorHidesInternalErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)

	RespondWithError(rec, req, stderrors.New("sql: connection reset"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Error *Envelope `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, body.Error.Message, "sql")
}
