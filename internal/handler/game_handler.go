package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jramir7254/phishing-backend/internal/domain"
	"github.com/jramir7254/phishing-backend/internal/middleware"
	"github.com/jramir7254/phishing-backend/internal/service"
	"github.com/jramir7254/phishing-backend/pkg/logger"
)

type GameHandler struct {
	gameService *service.GameService
	logger      *logger.Logger
}

func NewGameHandler(gameService *service.GameService, logger *logger.Logger) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		logger:      logger,
	}
}

// GetAttempt handles GET /game/attempt: returns the team's open attempt,
// creating one when needed, or a done signal.
func (h *GameHandler) GetAttempt(w http.ResponseWriter, r *http.Request) {
	teamID, ok := h.teamID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	state, err := h.gameService.GetOrCreateAttempt(r.Context(), teamID)
	if err != nil {
		h.logger.WithError(err).WithField("team_id", teamID).Error("Failed to get attempt")
		respondError(w, http.StatusInternalServerError, "Failed to get attempt")
		return
	}

	respondJSON(w, http.StatusOK, state)
}

// SubmitAttempt handles POST /game/attempt/{attemptId}/submit. Business
// rejections come back in the result body, not as HTTP errors, so one
// round trip carries either the scored answer plus next question or the
// rejection message.
func (h *GameHandler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	teamID, ok := h.teamID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	attemptID, err := strconv.Atoi(chi.URLParam(r, "attemptId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid attempt ID")
		return
	}

	var req domain.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.gameService.Submit(r.Context(), teamID, attemptID, req.Selection, req.Reasoning)
	if err != nil {
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"team_id":    teamID,
			"attempt_id": attemptID,
		}).Error("Failed to submit attempt")
		respondError(w, http.StatusInternalServerError, "Failed to submit attempt")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetResults handles GET /game/results: the team's full history with
// correctness.
func (h *GameHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	teamID, ok := h.teamID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	results, err := h.gameService.TeamResults(r.Context(), teamID)
	if err != nil {
		h.logger.WithError(err).WithField("team_id", teamID).Error("Failed to get results")
		respondError(w, http.StatusInternalServerError, "Failed to get results")
		return
	}

	respondJSON(w, http.StatusOK, results)
}

// GetLeaderboard handles GET /game/leaderboard
func (h *GameHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.gameService.Leaderboard(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get leaderboard")
		respondError(w, http.StatusInternalServerError, "Failed to get leaderboard")
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

// teamID extracts the authenticated team's ID from the request context.
// The admin sentinel has no gameplay state and is rejected here.
func (h *GameHandler) teamID(r *http.Request) (int, bool) {
	claims, ok := middleware.TeamFromContext(r.Context())
	if !ok || claims.IsAdmin {
		return 0, false
	}
	return claims.TeamID, true
}
