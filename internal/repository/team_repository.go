package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jramir7254/phishing-backend/internal/domain"
	"github.com/jramir7254/phishing-backend/pkg/database"
)

type PostgresTeamRepository struct {
	db *database.PostgresDB
}

func NewTeamRepository(db *database.PostgresDB) *PostgresTeamRepository {
	return &PostgresTeamRepository{db: db}
}

// Create inserts a new team. A unique violation on team_name surfaces as
// a *pgconn.PgError with code 23505 for the caller to translate.
func (r *PostgresTeamRepository) Create(ctx context.Context, teamName, joinCode string) (*domain.Team, error) {
	team := &domain.Team{TeamName: teamName, JoinCode: joinCode}
	query := `
		INSERT INTO teams (team_name, join_code)
		VALUES ($1, $2)
		RETURNING id, joined_at
	`

	err := r.db.Pool.QueryRow(ctx, query, teamName, joinCode).Scan(&team.ID, &team.JoinedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return team, nil
}

// GetByID gets a team by ID
func (r *PostgresTeamRepository) GetByID(ctx context.Context, id int) (*domain.Team, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

// GetByName gets a team by its unique name
func (r *PostgresTeamRepository) GetByName(ctx context.Context, teamName string) (*domain.Team, error) {
	return r.getOne(ctx, `WHERE team_name = $1`, teamName)
}

// GetByJoinCode gets a team by its join code
func (r *PostgresTeamRepository) GetByJoinCode(ctx context.Context, joinCode string) (*domain.Team, error) {
	return r.getOne(ctx, `WHERE join_code = $1`, joinCode)
}

func (r *PostgresTeamRepository) getOne(ctx context.Context, where string, arg any) (*domain.Team, error) {
	var team domain.Team
	query := `
		SELECT id, team_name, join_code, joined_at, finished_at
		FROM teams ` + where

	err := r.db.Pool.QueryRow(ctx, query, arg).Scan(
		&team.ID,
		&team.TeamName,
		&team.JoinCode,
		&team.JoinedAt,
		&team.FinishedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return &team, nil
}

// Delete removes a team; attempts cascade via the schema
func (r *PostgresTeamRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete team: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListWithScores returns every team left-joined against its aggregate
// correct count. Teams with no attempts score zero. Ordered by team id.
func (r *PostgresTeamRepository) ListWithScores(ctx context.Context) ([]domain.TeamScore, error) {
	query := `
		SELECT
			t.id,
			t.team_name,
			t.join_code,
			t.joined_at,
			t.finished_at,
			COALESCE(score.correct_count, 0) AS correct_count
		FROM teams t
		LEFT JOIN (
			SELECT
				a.team_id,
				SUM(CASE WHEN a.selected_option = e.category THEN 1 ELSE 0 END) AS correct_count
			FROM attempts a
			JOIN emails e ON e.id = a.email_id
			GROUP BY a.team_id
		) score ON score.team_id = t.id
		ORDER BY t.id
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams with scores: %w", err)
	}
	defer rows.Close()

	teams := []domain.TeamScore{}
	for rows.Next() {
		var ts domain.TeamScore
		err := rows.Scan(
			&ts.ID,
			&ts.TeamName,
			&ts.JoinCode,
			&ts.JoinedAt,
			&ts.FinishedAt,
			&ts.CorrectCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team score: %w", err)
		}
		teams = append(teams, ts)
	}

	return teams, rows.Err()
}
