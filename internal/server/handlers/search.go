package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/pokeknower/pokeknower/internal/core"
)

// Search handles GET /api/search. Every filter parameter is optional, and
// malformed numeric input is dropped rather than rejected. That leniency is
// part of the search contract.
func (a *API) Search(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	criteria := core.CriteriaFromValues(params)
	page := intQueryDefault(params, "page", 1)
	pageSize := intQueryDefault(params, "pageSize", a.DefaultPageSize)
	if pageSize < 1 {
		pageSize = a.DefaultPageSize
	}
	if pageSize > a.MaxPageSize {
		pageSize = a.MaxPageSize
	}

	result := core.Search(a.Catalog, criteria, page, pageSize)
	respondJSON(w, http.StatusOK, result)
}

func intQueryDefault(params url.Values, key string, def int) int {
	raw := params.Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
