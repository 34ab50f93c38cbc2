package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/jramir7254/phishing-backend/internal/domain"
	"github.com/jramir7254/phishing-backend/internal/repository"
)

// AdminService backs the admin endpoints: team inspection, team removal,
// and the destructive database reset.
type AdminService struct {
	teams    repository.TeamRepository
	gameData repository.GameDataRepository
	cache    *CacheService
	seed     []domain.Email
	logger   *zap.Logger
}

// NewAdminService creates a new admin service. seed is the email corpus
// re-inserted on reset.
func NewAdminService(teams repository.TeamRepository, gameData repository.GameDataRepository, cache *CacheService, seed []domain.Email, logger *zap.Logger) *AdminService {
	return &AdminService{
		teams:    teams,
		gameData: gameData,
		cache:    cache,
		seed:     seed,
		logger:   logger,
	}
}

// ListTeams returns every team with join code and aggregate score.
func (s *AdminService) ListTeams(ctx context.Context) ([]domain.TeamScore, error) {
	return s.cache.TeamScoresWithCache(ctx, s.teams.ListWithScores)
}

// DeleteTeam removes a team and its attempts; false when no such team.
func (s *AdminService) DeleteTeam(ctx context.Context, teamID int) (bool, error) {
	deleted, err := s.teams.Delete(ctx, teamID)
	if err != nil {
		return false, err
	}
	if deleted {
		s.cache.InvalidateTeam(ctx, teamID)
		s.cache.InvalidateScores(ctx)
		s.logger.Info("Team deleted", zap.Int("team_id", teamID))
	}
	return deleted, nil
}

// Reset wipes all gameplay data and reseeds the email corpus. Callers
// must ensure no gameplay requests race the reset.
func (s *AdminService) Reset(ctx context.Context) error {
	if err := s.gameData.Reset(ctx, s.seed); err != nil {
		return err
	}
	s.cache.InvalidateScores(ctx)
	s.logger.Warn("Database reset", zap.Int("seeded_emails", len(s.seed)))
	return nil
}
