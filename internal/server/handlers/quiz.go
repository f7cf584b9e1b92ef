package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pokeknower/pokeknower/internal/core"
	apperrors "github.com/pokeknower/pokeknower/internal/errors"
)

// QuizQuestion handles GET /api/quiz/question.
func (a *API) QuizQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := a.Catalog.NewQuizQuestion()
	if err != nil {
		respondError(w, r, apperrors.NewNotFoundError("Not enough Pokémon available for a quiz"))
		return
	}
	respondJSON(w, http.StatusOK, question)
}

type quizSubmitRequest struct {
	Player string `json:"player"`
	Score  int    `json:"score"`
	Total  int    `json:"total"`
}

type quizSubmitResponse struct {
	Success bool           `json:"success"`
	Score   core.QuizScore `json:"score"`
}

// QuizSubmit handles POST /api/quiz/submit and persists the round.
func (a *API) QuizSubmit(w http.ResponseWriter, r *http.Request) {
	var req quizSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, apperrors.NewInvalidInputError("Request body must be JSON with score and total"))
		return
	}
	if req.Total < 1 {
		respondError(w, r, apperrors.NewValidationError("total must be positive"))
		return
	}
	if req.Score < 0 || req.Score > req.Total {
		respondError(w, r, apperrors.NewValidationError("score must be between 0 and total"))
		return
	}

	entry := core.QuizScore{
		Player:         req.Player,
		Score:          req.Score,
		TotalQuestions: req.Total,
	}

	id, err := a.Store.InsertQuizScore(r.Context(), entry)
	if err != nil {
		respondError(w, r, apperrors.NewDatabaseError("Could not save quiz score"))
		return
	}
	entry.ID = id

	respondJSON(w, http.StatusOK, quizSubmitResponse{Success: true, Score: entry})
}

// QuizLeaderboard handles GET /api/quiz/leaderboard.
func (a *API) QuizLeaderboard(w http.ResponseWriter, r *http.Request) {
	scores, err := a.Store.Leaderboard(r.Context(), 20)
	if err != nil {
		respondError(w, r, apperrors.NewDatabaseError("Could not load leaderboard"))
		return
	}
	if scores == nil {
		scores = []core.QuizScore{}
	}
	respondJSON(w, http.StatusOK, scores)
}
