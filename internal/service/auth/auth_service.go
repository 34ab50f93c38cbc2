package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jramir7254/phishing-backend/internal/domain"
	"github.com/jramir7254/phishing-backend/internal/repository"
	"github.com/jramir7254/phishing-backend/internal/service"
	apperrors "github.com/jramir7254/phishing-backend/pkg/errors"
	"github.com/jramir7254/phishing-backend/pkg/logger"
)

// tokenTTL matches the original deployment: teams re-authenticate with
// their join code, so tokens are long-lived.
const tokenTTL = 30 * 24 * time.Hour

const issuer = "phishing-backend"

// Service implements the AuthService interface with HS256-signed JWTs.
type Service struct {
	secret    []byte
	adminCode string
	teams     repository.TeamRepository
	logger    *logger.Logger
}

// NewService creates a new auth service
func NewService(jwtSecret, adminCode string, teams repository.TeamRepository, logger *logger.Logger) service.AuthService {
	return &Service{
		secret:    []byte(jwtSecret),
		adminCode: adminCode,
		teams:     teams,
		logger:    logger,
	}
}

// Register creates a team with a generated join code and signs a token
// for it. A taken team name is a business rejection, not a fault.
func (s *Service) Register(ctx context.Context, teamName string) (string, error) {
	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return "", apperrors.NewValidationError("Team name is required")
	}

	existing, err := s.teams.GetByName(ctx, teamName)
	if err != nil {
		return "", apperrors.NewInternalError("Failed to check team name", err)
	}
	if existing != nil {
		return "", apperrors.NewConflictError("Team name already taken")
	}

	joinCode, err := generateJoinCode()
	if err != nil {
		return "", apperrors.NewInternalError("Failed to generate join code", err)
	}

	team, err := s.teams.Create(ctx, teamName, joinCode)
	if err != nil {
		// The pre-check above races with concurrent registrations; the
		// unique constraint is the authority.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", apperrors.NewConflictError("Team name already taken")
		}
		return "", apperrors.NewInternalError("Failed to create team", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"team_id":   team.ID,
		"team_name": team.TeamName,
	}).Info("Team registered")

	return s.signTeam(team)
}

// Login exchanges a join code for a token. The configured admin code
// yields the admin sentinel identity; unknown codes are rejected.
func (s *Service) Login(ctx context.Context, joinCode string) (string, error) {
	joinCode = strings.TrimSpace(joinCode)
	if joinCode == "" {
		return "", apperrors.NewValidationError("Join code is required")
	}

	if s.adminCode != "" && joinCode == s.adminCode {
		s.logger.Info("Admin login")
		return s.sign(&domain.TeamClaims{
			TeamID:   domain.AdminTeamID,
			TeamName: "admin",
			IsAdmin:  true,
		})
	}

	team, err := s.teams.GetByJoinCode(ctx, joinCode)
	if err != nil {
		return "", apperrors.NewInternalError("Failed to look up join code", err)
	}
	if team == nil {
		return "", apperrors.NewNotFoundError("Team not found")
	}

	s.logger.WithField("team_id", team.ID).Info("Team logged in")
	return s.signTeam(team)
}

// VerifyToken validates a bearer token and returns its claims. Any parse
// or signature failure fails closed.
func (s *Service) VerifyToken(_ context.Context, tokenString string) (*domain.TeamClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.TeamClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, apperrors.NewAuthenticationError("Invalid or expired token")
	}

	claims, ok := token.Claims.(*domain.TeamClaims)
	if !ok || !token.Valid {
		return nil, apperrors.NewAuthenticationError("Invalid token claims")
	}

	return claims, nil
}

func (s *Service) signTeam(team *domain.Team) (string, error) {
	return s.sign(&domain.TeamClaims{
		TeamID:   team.ID,
		TeamName: team.TeamName,
		JoinCode: team.JoinCode,
		IsAdmin:  false,
	})
}

func (s *Service) sign(claims *domain.TeamClaims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperrors.NewInternalError("Failed to sign token", err)
	}
	return signed, nil
}

// generateJoinCode produces a 6-character uppercase hex code. Collisions
// are caught by the unique constraint on teams.join_code.
func generateJoinCode() (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}
