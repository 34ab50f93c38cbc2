package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jramir7254/phishing-backend/internal/domain"
	"github.com/jramir7254/phishing-backend/internal/service"
	"github.com/jramir7254/phishing-backend/pkg/errors"
	"github.com/jramir7254/phishing-backend/pkg/logger"
)

// ContextKey represents keys used in request context
type ContextKey string

const (
	// TeamContextKey is the key for the authenticated team claims
	TeamContextKey ContextKey = "team"
	// RequestIDContextKey is the key for request ID in context
	RequestIDContextKey ContextKey = "request_id"
)

// Auth creates an authentication middleware. It verifies the bearer
// token and, for team identities, confirms the team still exists so
// deleted teams are locked out even with a valid token. The admin
// sentinel has no backing row and skips the liveness check.
func Auth(authService service.AuthService, teams service.TeamChecker, logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeErrorResponse(w, errors.NewAuthenticationError("Access denied. No token provided."), logger)
				return
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeErrorResponse(w, errors.NewAuthenticationError("Invalid authorization header format"), logger)
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == "" {
				writeErrorResponse(w, errors.NewAuthenticationError("Access denied. No token provided."), logger)
				return
			}

			ctx := r.Context()
			claims, err := authService.VerifyToken(ctx, token)
			if err != nil {
				logger.WithError(err).Warn("Token verification failed")
				writeErrorResponse(w, errors.NewAuthenticationError("Invalid or expired token"), logger)
				return
			}

			if !claims.IsAdmin {
				exists, err := teams.TeamExists(ctx, claims.TeamID)
				if err != nil {
					writeErrorResponse(w, errors.NewInternalError("Failed to verify team", err), logger)
					return
				}
				if !exists {
					logger.WithField("team_id", claims.TeamID).Warn("Token for deleted team rejected")
					writeErrorResponse(w, errors.NewAuthenticationError("Team no longer exists"), logger)
					return
				}
			}

			ctx = context.WithValue(ctx, TeamContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects non-admin identities. Must run after Auth.
func RequireAdmin(logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := TeamFromContext(r.Context())
			if !ok {
				writeErrorResponse(w, errors.NewAuthenticationError("Access denied. No token provided."), logger)
				return
			}
			if !claims.IsAdmin {
				logger.WithField("team_id", claims.TeamID).Warn("Non-admin attempted admin route")
				writeErrorResponse(w, errors.NewAuthorizationError("Admin privileges required"), logger)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// TeamFromContext retrieves the authenticated claims from the context.
func TeamFromContext(ctx context.Context) (*domain.TeamClaims, bool) {
	claims, ok := ctx.Value(TeamContextKey).(*domain.TeamClaims)
	return claims, ok && claims != nil
}

// RequestID creates a middleware that adds a unique request ID to each request
func RequestID(logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := generateRequestID()

			ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)
			w.Header().Set("X-Request-ID", requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// generateRequestID generates a simple request ID
func generateRequestID() string {
	return fmt.Sprintf("%d-%d", time.Now().Unix(), time.Now().Nanosecond())
}

// writeErrorResponse writes a structured error response to the client
func writeErrorResponse(w http.ResponseWriter, appErr *errors.AppError, logger *logger.Logger) {
	logger.WithError(appErr).Debug("Request rejected")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode)

	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"type":    appErr.Type,
		"message": appErr.Message,
	})
}
