package service

import (
	"context"

	"github.com/jramir7254/phishing-backend/internal/domain"
)

// AuthService defines the interface for the identity issuer: it signs
// bearer tokens at registration/login and verifies them at the boundary.
type AuthService interface {
	// Register creates a team with a fresh join code and returns a
	// signed token for it
	Register(ctx context.Context, teamName string) (string, error)

	// Login exchanges a join code (or the admin code) for a signed token
	Login(ctx context.Context, joinCode string) (string, error)

	// VerifyToken validates a bearer token and returns its claims, or
	// fails closed
	VerifyToken(ctx context.Context, token string) (*domain.TeamClaims, error)
}

// TeamChecker reports whether a team still exists. The auth middleware
// uses it to lock out tokens whose team was deleted after issuance.
type TeamChecker interface {
	TeamExists(ctx context.Context, teamID int) (bool, error)
}
