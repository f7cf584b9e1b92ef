package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pokeknower/pokeknower/internal/core"
	apperrors "github.com/pokeknower/pokeknower/internal/errors"
)

// Pokemon handles GET /api/pokemon/{identifier}, resolving by name first
// and then by dex number.
func (a *API) Pokemon(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "identifier")

	p, ok := a.Catalog.ByName(identifier)
	if !ok {
		if number, err := strconv.Atoi(identifier); err == nil {
			p, ok = a.Catalog.ByNumber(number)
		}
	}
	if !ok {
		respondError(w, r, apperrors.NewNotFoundError(fmt.Sprintf("Pokémon %q not found", identifier)))
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// TypesHandler handles GET /api/types.
func (a *API) TypesHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.Types)
}

// Random handles GET /api/random.
func (a *API) Random(w http.ResponseWriter, r *http.Request) {
	p, ok := a.Catalog.Random()
	if !ok {
		respondError(w, r, apperrors.NewNotFoundError("The catalog is empty"))
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// OfTheDay handles GET /api/pokemon-of-the-day. The pick is stable for a
// given date.
func (a *API) OfTheDay(w http.ResponseWriter, r *http.Request) {
	p, ok := a.Catalog.OfTheDay(time.Now().UTC())
	if !ok {
		respondError(w, r, apperrors.NewNotFoundError("The catalog is empty"))
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// statsResponse summarizes the catalog.
type statsResponse struct {
	TotalPokemon      int                   `json:"total_pokemon"`
	TypesDistribution map[core.TypeName]int `json:"types_distribution"`
}

// Stats handles GET /api/stats.
func (a *API) Stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, statsResponse{
		TotalPokemon:      a.Catalog.Len(),
		TypesDistribution: a.Catalog.TypeDistribution(),
	})
}

type compareRequest struct {
	PokemonNumbers []int `json:"pokemon_numbers"`
}

type compareResponse struct {
	Pokemon []core.Pokemon `json:"pokemon"`
}

// Compare handles POST /api/compare for 2-4 species side by side.
func (a *API) Compare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, apperrors.NewInvalidInputError("Request body must be JSON with pokemon_numbers"))
		return
	}

	if len(req.PokemonNumbers) < 2 {
		respondError(w, r, apperrors.NewValidationError("Select at least 2 Pokémon to compare"))
		return
	}
	if len(req.PokemonNumbers) > 4 {
		respondError(w, r, apperrors.NewValidationError("Maximum 4 Pokémon allowed"))
		return
	}

	selected := make([]core.Pokemon, 0, len(req.PokemonNumbers))
	for _, number := range req.PokemonNumbers {
		p, ok := a.Catalog.ByNumber(number)
		if !ok {
			respondError(w, r, apperrors.NewNotFoundError(fmt.Sprintf("Pokémon #%d not found", number)))
			return
		}
		selected = append(selected, p)
	}

	respondJSON(w, http.StatusOK, compareResponse{Pokemon: selected})
}
