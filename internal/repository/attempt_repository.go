package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jramir7254/phishing-backend/internal/domain"
	"github.com/jramir7254/phishing-backend/pkg/database"
)

// attemptLockClass namespaces the per-team advisory lock so it cannot
// collide with other advisory lock users on the same database.
const attemptLockClass = 7431

type PostgresAttemptRepository struct {
	db *database.PostgresDB
}

func NewAttemptRepository(db *database.PostgresDB) *PostgresAttemptRepository {
	return &PostgresAttemptRepository{db: db}
}

// InTeamTx runs fn inside a transaction that holds a per-team advisory
// lock for its duration. The check-open/create-new sequence of the
// attempt engine must not interleave between two requests from the same
// team; the lock serializes them while leaving other teams unaffected.
func (r *PostgresAttemptRepository) InTeamTx(ctx context.Context, teamID int, fn func(tx AttemptTx) error) error {
	return pgx.BeginFunc(ctx, r.db.Pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, attemptLockClass, teamID); err != nil {
			return fmt.Errorf("failed to acquire team lock: %w", err)
		}
		return fn(&attemptTx{q: tx})
	})
}

// ListResults returns the team's full history annotated with correctness
// computed against each email's category.
func (r *PostgresAttemptRepository) ListResults(ctx context.Context, teamID int) ([]domain.AttemptResult, error) {
	query := `
		SELECT
			a.id,
			a.team_id,
			a.email_id,
			a.selected_option,
			a.reasoning,
			e.category,
			(a.selected_option IS NOT NULL AND a.selected_option = e.category) AS is_correct
		FROM attempts a
		JOIN emails e ON e.id = a.email_id
		WHERE a.team_id = $1
		ORDER BY a.id
	`

	rows, err := r.db.Pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team results: %w", err)
	}
	defer rows.Close()

	results := []domain.AttemptResult{}
	for rows.Next() {
		var res domain.AttemptResult
		err := rows.Scan(
			&res.AttemptID,
			&res.TeamID,
			&res.EmailID,
			&res.SelectedOption,
			&res.Reasoning,
			&res.CorrectAnswer,
			&res.IsCorrect,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attempt result: %w", err)
		}
		results = append(results, res)
	}

	return results, rows.Err()
}

// attemptTx implements AttemptTx over an open pgx transaction.
type attemptTx struct {
	q pgx.Tx
}

func (t *attemptTx) CountSubmitted(ctx context.Context, teamID int) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM attempts WHERE team_id = $1 AND selected_option IS NOT NULL`

	if err := t.q.QueryRow(ctx, query, teamID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count submitted attempts: %w", err)
	}
	return count, nil
}

func (t *attemptTx) MarkFinished(ctx context.Context, teamID int) error {
	query := `UPDATE teams SET finished_at = now() WHERE id = $1 AND finished_at IS NULL`

	if _, err := t.q.Exec(ctx, query, teamID); err != nil {
		return fmt.Errorf("failed to mark team finished: %w", err)
	}
	return nil
}

func (t *attemptTx) GetOpen(ctx context.Context, teamID int) (*domain.Attempt, error) {
	query := `
		SELECT id, team_id, email_id, selected_option, reasoning, created_at
		FROM attempts
		WHERE team_id = $1 AND selected_option IS NULL
	`
	return t.scanAttempt(t.q.QueryRow(ctx, query, teamID))
}

func (t *attemptTx) GetByID(ctx context.Context, attemptID int) (*domain.Attempt, error) {
	query := `
		SELECT id, team_id, email_id, selected_option, reasoning, created_at
		FROM attempts
		WHERE id = $1
	`
	return t.scanAttempt(t.q.QueryRow(ctx, query, attemptID))
}

func (t *attemptTx) scanAttempt(row pgx.Row) (*domain.Attempt, error) {
	var a domain.Attempt
	err := row.Scan(&a.ID, &a.TeamID, &a.EmailID, &a.SelectedOption, &a.Reasoning, &a.CreatedAt)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}
	return &a, nil
}

// PickRandomEmail selects a random email excluded against the team's
// entire attempt history, so no email is ever re-served to a team.
func (t *attemptTx) PickRandomEmail(ctx context.Context, teamID int) (*domain.Email, error) {
	var email domain.Email
	query := `
		SELECT id, category, subject, sent_from, sent_to, date, html
		FROM emails
		WHERE id NOT IN (SELECT email_id FROM attempts WHERE team_id = $1)
		ORDER BY random()
		LIMIT 1
	`

	err := t.q.QueryRow(ctx, query, teamID).Scan(
		&email.ID,
		&email.Category,
		&email.Subject,
		&email.SentFrom,
		&email.SentTo,
		&email.Date,
		&email.HTML,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to pick random email: %w", err)
	}

	return &email, nil
}

func (t *attemptTx) Insert(ctx context.Context, teamID, emailID int) (int, error) {
	var id int
	query := `INSERT INTO attempts (team_id, email_id) VALUES ($1, $2) RETURNING id`

	if err := t.q.QueryRow(ctx, query, teamID, emailID).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert attempt: %w", err)
	}
	return id, nil
}

// SubmitAnswer writes the selection once. The selected_option IS NULL
// guard makes the write a no-op on an already-answered attempt, which the
// caller surfaces as a double-submission rejection.
func (t *attemptTx) SubmitAnswer(ctx context.Context, attemptID int, selection string, reasoning *string) (bool, error) {
	query := `
		UPDATE attempts
		SET selected_option = $2, reasoning = $3
		WHERE id = $1 AND selected_option IS NULL
	`

	tag, err := t.q.Exec(ctx, query, attemptID, selection, reasoning)
	if err != nil {
		return false, fmt.Errorf("failed to submit answer: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (t *attemptTx) GetView(ctx context.Context, attemptID int) (*domain.AttemptView, error) {
	var (
		view     domain.AttemptView
		category domain.Category
	)
	query := `
		SELECT
			a.id, a.selected_option, a.reasoning,
			e.id, e.subject, e.sent_from, e.sent_to, e.date, e.html, e.category
		FROM attempts a
		JOIN emails e ON e.id = a.email_id
		WHERE a.id = $1
	`

	err := t.q.QueryRow(ctx, query, attemptID).Scan(
		&view.AttemptID,
		&view.SelectedOption,
		&view.Reasoning,
		&view.Email.ID,
		&view.Email.Subject,
		&view.Email.From,
		&view.Email.To,
		&view.Email.Date,
		&view.Email.HTML,
		&category,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attempt view: %w", err)
	}

	// The category (and with it the score) is only revealed once the
	// attempt has been answered.
	if view.SelectedOption != nil {
		correct := domain.ScoreAttempt(*view.SelectedOption, category)
		view.IsCorrect = &correct
		view.CorrectAnswer = category
	}

	return &view, nil
}
