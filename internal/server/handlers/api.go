// Package handlers implements the HTTP surface over the catalog filter
// engine and the predictor service.
package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/pokeknower/pokeknower/internal/core"
	"github.com/pokeknower/pokeknower/internal/core/predict"
	"github.com/pokeknower/pokeknower/internal/core/store"
	apperrors "github.com/pokeknower/pokeknower/internal/errors"
)

// API bundles the read-only catalog, the predictor and the store behind the
// HTTP handlers. All dependencies are injected at construction; nothing here
// is process-global.
type API struct {
	Catalog   *core.Catalog
	Predictor *predict.Service
	Store     *store.Store
	Types     []core.TypeInfo
	Logger    *zap.Logger

	DefaultPageSize int
	MaxPageSize     int
	MaxUploadBytes  int64
}

// NewAPI builds the handler set. logger may be nil.
func NewAPI(catalog *core.Catalog, predictor *predict.Service, st *store.Store, types []core.TypeInfo, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		Catalog:         catalog,
		Predictor:       predictor,
		Store:           st,
		Types:           types,
		Logger:          logger,
		DefaultPageSize: 24,
		MaxPageSize:     100,
		MaxUploadBytes:  10 << 20,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	apperrors.RespondWithError(w, r, err)
}
