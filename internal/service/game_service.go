package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jramir7254/phishing-backend/internal/domain"
	"github.com/jramir7254/phishing-backend/internal/repository"
)

// GameService is the attempt engine: it decides which email a team sees
// next, records submissions exactly once, detects completion, and serves
// scores. All progression runs inside a per-team store transaction so the
// at-most-one-open-attempt and no-repeat invariants hold under concurrent
// requests.
type GameService struct {
	attempts  repository.AttemptRepository
	teams     repository.TeamRepository
	cache     *CacheService
	threshold int
	logger    *zap.Logger
}

// NewGameService creates a new game service. threshold is the number of
// submitted attempts after which a team is finished.
func NewGameService(attempts repository.AttemptRepository, teams repository.TeamRepository, cache *CacheService, threshold int, logger *zap.Logger) *GameService {
	return &GameService{
		attempts:  attempts,
		teams:     teams,
		cache:     cache,
		threshold: threshold,
		logger:    logger,
	}
}

// GetOrCreateAttempt returns the team's open attempt, creating one from a
// random unseen email when necessary. Repeated calls without an
// intervening submission return the same attempt. Threshold reached or
// content exhausted yield a done state, never an error.
func (s *GameService) GetOrCreateAttempt(ctx context.Context, teamID int) (*domain.AttemptState, error) {
	var state *domain.AttemptState

	err := s.attempts.InTeamTx(ctx, teamID, func(tx repository.AttemptTx) error {
		count, err := tx.CountSubmitted(ctx, teamID)
		if err != nil {
			return err
		}

		if count >= s.threshold {
			if err := tx.MarkFinished(ctx, teamID); err != nil {
				return err
			}
			state = s.finishedState(count)
			return nil
		}

		open, err := tx.GetOpen(ctx, teamID)
		if err != nil {
			return err
		}
		if open != nil {
			view, err := tx.GetView(ctx, open.ID)
			if err != nil {
				return err
			}
			state = &domain.AttemptState{Done: false, Count: count, Attempt: view}
			return nil
		}

		view, err := s.createNextAttempt(ctx, tx, teamID)
		if err != nil {
			return err
		}
		if view == nil {
			state = &domain.AttemptState{Done: true, Count: count, Message: "No unused emails remain"}
			return nil
		}

		state = &domain.AttemptState{Done: false, Count: count, Attempt: view}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get or create attempt: %w", err)
	}

	return state, nil
}

// Submit records a team's answer. Business-rule rejections (unknown
// attempt, foreign attempt, double submission) come back as result
// variants; only store faults surface as errors. On success the result
// carries the scored attempt and, when the team is not finished and
// emails remain, the next open attempt.
func (s *GameService) Submit(ctx context.Context, teamID, attemptID int, selection string, reasoning string) (*domain.SubmitResult, error) {
	if !domain.ValidSelection(selection) {
		return &domain.SubmitResult{Error: true, Message: "Selection must be 'legit' or 'phishing'"}, nil
	}

	var reasoningPtr *string
	if reasoning != "" {
		reasoningPtr = &reasoning
	}

	var result *domain.SubmitResult

	err := s.attempts.InTeamTx(ctx, teamID, func(tx repository.AttemptTx) error {
		attempt, err := tx.GetByID(ctx, attemptID)
		if err != nil {
			return err
		}
		if attempt == nil {
			result = &domain.SubmitResult{Error: true, Message: "Attempt not found"}
			return nil
		}
		if attempt.TeamID != teamID {
			result = &domain.SubmitResult{Error: true, Message: "Attempt does not belong to this team"}
			return nil
		}
		if !attempt.Open() {
			result = &domain.SubmitResult{Error: true, Message: "Attempt already submitted"}
			return nil
		}

		updated, err := tx.SubmitAnswer(ctx, attemptID, selection, reasoningPtr)
		if err != nil {
			return err
		}
		if !updated {
			result = &domain.SubmitResult{Error: true, Message: "Attempt already submitted"}
			return nil
		}

		view, err := tx.GetView(ctx, attemptID)
		if err != nil {
			return err
		}

		count, err := tx.CountSubmitted(ctx, teamID)
		if err != nil {
			return err
		}

		if count >= s.threshold {
			if err := tx.MarkFinished(ctx, teamID); err != nil {
				return err
			}
			result = &domain.SubmitResult{
				Done:    true,
				Count:   count,
				Message: fmt.Sprintf("Team has completed all %d attempts", s.threshold),
				Updated: view,
			}
			return nil
		}

		next, err := s.createNextAttempt(ctx, tx, teamID)
		if err != nil {
			return err
		}
		if next == nil {
			// Content exhausted before the threshold; a normal terminal
			// state, not a failure.
			result = &domain.SubmitResult{Done: true, Count: count, Updated: view}
			return nil
		}

		result = &domain.SubmitResult{Done: false, Count: count, Updated: view, Next: next}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit attempt: %w", err)
	}

	if !result.Error {
		s.cache.InvalidateScores(ctx)
		s.logger.Info("Attempt submitted",
			zap.Int("team_id", teamID),
			zap.Int("attempt_id", attemptID),
			zap.Int("count", result.Count),
			zap.Bool("done", result.Done))
	}

	return result, nil
}

// createNextAttempt picks a random unseen email and opens an attempt for
// it, returning nil when none remain. Must run inside the team tx.
func (s *GameService) createNextAttempt(ctx context.Context, tx repository.AttemptTx, teamID int) (*domain.AttemptView, error) {
	email, err := tx.PickRandomEmail(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if email == nil {
		return nil, nil
	}

	id, err := tx.Insert(ctx, teamID, email.ID)
	if err != nil {
		return nil, err
	}

	return tx.GetView(ctx, id)
}

func (s *GameService) finishedState(count int) *domain.AttemptState {
	return &domain.AttemptState{
		Done:    true,
		Count:   count,
		Message: fmt.Sprintf("Team has completed all %d attempts", s.threshold),
	}
}

// TeamResults returns the team's full attempt history with correctness.
func (s *GameService) TeamResults(ctx context.Context, teamID int) ([]domain.AttemptResult, error) {
	return s.attempts.ListResults(ctx, teamID)
}

// Leaderboard returns one row per team with aggregate correct counts,
// ordered by team id. Served through the cache when Redis is configured.
func (s *GameService) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return s.cache.LeaderboardWithCache(ctx, func(ctx context.Context) ([]domain.LeaderboardEntry, error) {
		teams, err := s.teams.ListWithScores(ctx)
		if err != nil {
			return nil, err
		}
		return domain.Leaderboard(teams), nil
	})
}

// TeamExists implements the TeamChecker used by the auth middleware.
func (s *GameService) TeamExists(ctx context.Context, teamID int) (bool, error) {
	return s.cache.TeamExistsWithCache(ctx, teamID, func(ctx context.Context) (bool, error) {
		team, err := s.teams.GetByID(ctx, teamID)
		if err != nil {
			return false, err
		}
		return team != nil, nil
	})
}
