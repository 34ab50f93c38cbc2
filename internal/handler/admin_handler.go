package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jramir7254/phishing-backend/internal/service"
	"github.com/jramir7254/phishing-backend/pkg/logger"
)

type AdminHandler struct {
	adminService *service.AdminService
	logger       *logger.Logger
}

func NewAdminHandler(adminService *service.AdminService, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

// ListTeams handles GET /admin/teams: every team with join code and score.
func (h *AdminHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.adminService.ListTeams(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list teams")
		respondError(w, http.StatusInternalServerError, "Failed to list teams")
		return
	}

	respondJSON(w, http.StatusOK, teams)
}

// DeleteTeam handles DELETE /admin/teams/{teamId}
func (h *AdminHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := strconv.Atoi(chi.URLParam(r, "teamId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid team ID")
		return
	}

	deleted, err := h.adminService.DeleteTeam(r.Context(), teamID)
	if err != nil {
		h.logger.WithError(err).WithField("team_id", teamID).Error("Failed to delete team")
		respondError(w, http.StatusInternalServerError, "Failed to delete team")
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "Team not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Team deleted",
		"teamId":  teamID,
	})
}

// Reset handles POST /admin/reset: wipes teams, attempts, and emails, then
// reseeds the email corpus.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.Reset(r.Context()); err != nil {
		h.logger.WithError(err).Error("Failed to reset database")
		respondError(w, http.StatusInternalServerError, "Failed to reset database")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Database reset",
	})
}
