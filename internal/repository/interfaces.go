package repository

import (
	"context"

	"github.com/jramir7254/phishing-backend/internal/domain"
)

// TeamRepository defines the interface for team data operations
type TeamRepository interface {
	// Create inserts a new team and returns it with id and joined_at set
	Create(ctx context.Context, teamName, joinCode string) (*domain.Team, error)

	// GetByID retrieves a team by ID; nil when not found
	GetByID(ctx context.Context, id int) (*domain.Team, error)

	// GetByName retrieves a team by its unique name; nil when not found
	GetByName(ctx context.Context, teamName string) (*domain.Team, error)

	// GetByJoinCode retrieves a team by its join code; nil when not found
	GetByJoinCode(ctx context.Context, joinCode string) (*domain.Team, error)

	// Delete removes a team; false when no such team existed
	Delete(ctx context.Context, id int) (bool, error)

	// ListWithScores returns every team with its aggregate correct count,
	// ordered by team id
	ListWithScores(ctx context.Context) ([]domain.TeamScore, error)
}

// AttemptTx exposes the attempt engine's store operations inside a
// transaction serialized per team. All progression steps (count, open
// check, selection, insert) run through it so two concurrent requests
// from one team cannot interleave.
type AttemptTx interface {
	// CountSubmitted counts the team's answered attempts
	CountSubmitted(ctx context.Context, teamID int) (int, error)

	// MarkFinished stamps finished_at if it is still null. Idempotent.
	MarkFinished(ctx context.Context, teamID int) error

	// GetOpen returns the team's unanswered attempt; nil when none
	GetOpen(ctx context.Context, teamID int) (*domain.Attempt, error)

	// PickRandomEmail selects a random email the team has never been
	// shown; nil when the content is exhausted
	PickRandomEmail(ctx context.Context, teamID int) (*domain.Email, error)

	// Insert creates a new open attempt and returns its id
	Insert(ctx context.Context, teamID, emailID int) (int, error)

	// GetByID retrieves an attempt; nil when not found
	GetByID(ctx context.Context, attemptID int) (*domain.Attempt, error)

	// SubmitAnswer records the selection exactly once; false when the
	// attempt was already answered
	SubmitAnswer(ctx context.Context, attemptID int, selection string, reasoning *string) (bool, error)

	// GetView returns the attempt hydrated with email content, scored
	// when already answered
	GetView(ctx context.Context, attemptID int) (*domain.AttemptView, error)
}

// AttemptRepository defines the interface for attempt data operations
type AttemptRepository interface {
	// InTeamTx runs fn inside a transaction holding the team's advisory
	// lock
	InTeamTx(ctx context.Context, teamID int, fn func(tx AttemptTx) error) error

	// ListResults returns the team's full attempt history annotated with
	// correctness
	ListResults(ctx context.Context, teamID int) ([]domain.AttemptResult, error)
}

// GameDataRepository defines destructive administration of gameplay data
type GameDataRepository interface {
	// Reset drops all gameplay state and reseeds the email corpus.
	// Not safe to run concurrently with gameplay requests.
	Reset(ctx context.Context, emails []domain.Email) error

	// SeedEmails inserts the email corpus if the table is empty
	SeedEmails(ctx context.Context, emails []domain.Email) error
}
