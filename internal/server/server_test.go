package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeknower/pokeknower/internal/config"
	"github.com/pokeknower/pokeknower/internal/core"
	"github.com/pokeknower/pokeknower/internal/core/predict"
	"github.com/pokeknower/pokeknower/internal/server/handlers"
	servermw "github.com/pokeknower/pokeknower/internal/server/middleware"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	catalog := core.NewCatalog([]core.Pokemon{
		{Number: 1, Name: "Bulbasaur", MainType: core.TypeGrass},
		{Number: 4, Name: "Charmander", MainType: core.TypeFire},
		{Number: 7, Name: "Squirtle", MainType: core.TypeWater},
		{Number: 25, Name: "Pikachu", MainType: core.TypeElectric},
	})
	types, err := core.LoadTypeInfo()
	require.NoError(t, err)

	api := handlers.NewAPI(catalog, predict.NewService(catalog, nil, nil), nil, types, nil)
	health := handlers.NewHealthManager("test")

	return New(config.ServerConfig{Host: "127.0.0.1", Port: 0}, api, health, nil)
}

func TestServerRoutes(t *testing.T) {
	srv := testServer(t)

	paths := []string{
		"/health",
		"/health/live",
		"/health/ready",
		"/version",
		"/api/search",
		"/api/pokemon/pikachu",
		"/api/types",
		"/api/random",
		"/api/pokemon-of-the-day",
		"/api/stats",
		"/api/quiz/question",
	}

	for _, path := range paths {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", path)
	}
}

func TestServerNotFoundEnvelope(t *testing.T) {
	srv := testServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Error struct {
			Code          string `json:"code"`
			CorrelationID string `json:"correlation_id"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	// The middleware stamps every failure with the request correlation ID.
	assert.NotEmpty(t, body.Error.CorrelationID)
	assert.Equal(t, body.Error.CorrelationID, rec.Header().Get(servermw.RequestIDHeader))
}

func TestServerMethodNotAllowedEnvelope(t *testing.T) {
	srv := testServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/search", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "METHOD_NOT_ALLOWED", body.Error.Code)
}

func TestServerRecoversFromPanic(t *testing.T) {
	srv := testServer(t)
	srv.router.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("handler exploded")
	})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
