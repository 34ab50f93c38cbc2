package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/jramir7254/phishing-backend/internal/domain"
	"github.com/jramir7254/phishing-backend/pkg/redis"
)

// CacheService provides cache-aside helpers over Redis for the score
// queries that back the leaderboard and admin team listing. Every method
// is safe on a nil receiver or nil client, so the application degrades to
// direct database reads when Redis is not configured.
type CacheService struct {
	redis  *redis.Client
	logger *zap.Logger
}

// NewCacheService creates a new cache service
func NewCacheService(redisClient *redis.Client, logger *zap.Logger) *CacheService {
	return &CacheService{
		redis:  redisClient,
		logger: logger,
	}
}

func (c *CacheService) enabled() bool {
	return c != nil && c.redis != nil
}

// TeamScoresWithCache loads the scored team listing through the cache.
func (c *CacheService) TeamScoresWithCache(ctx context.Context, fallback func(ctx context.Context) ([]domain.TeamScore, error)) ([]domain.TeamScore, error) {
	if !c.enabled() {
		return fallback(ctx)
	}

	key := c.redis.KeyBuilder.KeyAdminTeams()
	cached, err := c.redis.Get(ctx, key)
	if err == nil && cached != "" {
		var teams []domain.TeamScore
		if err := json.Unmarshal([]byte(cached), &teams); err == nil {
			c.logger.Debug("Team scores cache hit")
			return teams, nil
		}
		c.logger.Warn("Team scores cache corrupted, falling back to database", zap.Error(err))
	}

	teams, err := fallback(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(teams); err == nil {
		if err := c.redis.Set(ctx, key, data, redis.TTLAdminTeams); err != nil {
			c.logger.Warn("Failed to cache team scores", zap.Error(err))
		}
	}

	return teams, nil
}

// TeamExistsWithCache answers the auth middleware's team-liveness check
// through the cache. Only positive results are cached; a deleted team is
// re-checked against the store every time (and its key is invalidated on
// delete).
func (c *CacheService) TeamExistsWithCache(ctx context.Context, teamID int, fallback func(ctx context.Context) (bool, error)) (bool, error) {
	if !c.enabled() {
		return fallback(ctx)
	}

	key := c.redis.KeyBuilder.KeyTeamExists(teamID)
	if n, err := c.redis.Exists(ctx, key); err == nil && n > 0 {
		return true, nil
	}

	exists, err := fallback(ctx)
	if err != nil {
		return false, err
	}

	if exists {
		if err := c.redis.Set(ctx, key, "1", redis.TTLTeamExists); err != nil {
			c.logger.Warn("Failed to cache team existence", zap.Int("team_id", teamID), zap.Error(err))
		}
	}

	return exists, nil
}

// InvalidateScores drops the score-derived caches. Called after every
// submission, team deletion, and reset.
func (c *CacheService) InvalidateScores(ctx context.Context) {
	if !c.enabled() {
		return
	}
	keys := []string{
		c.redis.KeyBuilder.KeyLeaderboard(),
		c.redis.KeyBuilder.KeyAdminTeams(),
	}
	if err := c.redis.Delete(ctx, keys...); err != nil {
		c.logger.Warn("Failed to invalidate score caches", zap.Error(err))
	}
}

// InvalidateTeam drops a team's liveness key so a deleted team loses
// access immediately rather than at TTL expiry.
func (c *CacheService) InvalidateTeam(ctx context.Context, teamID int) {
	if !c.enabled() {
		return
	}
	if err := c.redis.Delete(ctx, c.redis.KeyBuilder.KeyTeamExists(teamID)); err != nil {
		c.logger.Warn("Failed to invalidate team cache", zap.Int("team_id", teamID), zap.Error(err))
	}
}

// LeaderboardWithCache loads the public leaderboard through the cache.
func (c *CacheService) LeaderboardWithCache(ctx context.Context, fallback func(ctx context.Context) ([]domain.LeaderboardEntry, error)) ([]domain.LeaderboardEntry, error) {
	if !c.enabled() {
		return fallback(ctx)
	}

	key := c.redis.KeyBuilder.KeyLeaderboard()
	cached, err := c.redis.Get(ctx, key)
	if err == nil && cached != "" {
		var entries []domain.LeaderboardEntry
		if err := json.Unmarshal([]byte(cached), &entries); err == nil {
			c.logger.Debug("Leaderboard cache hit")
			return entries, nil
		}
		c.logger.Warn("Leaderboard cache corrupted, falling back to database", zap.Error(err))
	}

	entries, err := fallback(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(entries); err == nil {
		if err := c.redis.Set(ctx, key, data, redis.TTLLeaderboard); err != nil {
			c.logger.Warn("Failed to cache leaderboard", zap.Error(err))
		}
	}

	return entries, nil
}
