package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jramir7254/phishing-backend/internal/domain"
	"github.com/jramir7254/phishing-backend/internal/service"
	"github.com/jramir7254/phishing-backend/pkg/logger"
)

type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.authService.Register(r.Context(), req.TeamName)
	if err != nil {
		h.logger.WithError(err).WithField("team_name", req.TeamName).Warn("Registration failed")
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, domain.TokenResponse{Token: token})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.authService.Login(r.Context(), req.JoinCode)
	if err != nil {
		h.logger.WithError(err).Warn("Login failed")
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, domain.TokenResponse{Token: token})
}
