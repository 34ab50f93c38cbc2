package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/jramir7254/phishing-backend/pkg/errors"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
	})
}

// respondAppError maps an error to a response. AppErrors carry their own
// status and a caller-safe message; anything else is reported generically
// so internals never leak.
func respondAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		respondError(w, appErr.StatusCode, appErr.Message)
		return
	}
	respondError(w, http.StatusInternalServerError, "Internal Server Error")
}
