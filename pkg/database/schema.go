package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx, so schema
// operations can run from the migrate CLI and from the admin reset alike.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var createStatements = []struct {
	name string
	ddl  string
}{
	{
		name: "teams",
		ddl: `CREATE TABLE IF NOT EXISTS teams (
			id SERIAL PRIMARY KEY,
			team_name TEXT NOT NULL UNIQUE,
			join_code TEXT NOT NULL UNIQUE,
			joined_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			finished_at TIMESTAMPTZ
		)`,
	},
	{
		name: "emails",
		ddl: `CREATE TABLE IF NOT EXISTS emails (
			id SERIAL PRIMARY KEY,
			category TEXT NOT NULL CHECK (category IN ('legit', 'phishing')),
			subject TEXT NOT NULL,
			sent_from TEXT NOT NULL,
			sent_to TEXT NOT NULL,
			date TEXT NOT NULL,
			html TEXT NOT NULL
		)`,
	},
	{
		name: "attempts",
		ddl: `CREATE TABLE IF NOT EXISTS attempts (
			id SERIAL PRIMARY KEY,
			team_id INTEGER NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
			email_id INTEGER NOT NULL REFERENCES emails(id),
			selected_option TEXT CHECK (selected_option IN ('legit', 'phishing')),
			reasoning TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (team_id, email_id)
		)`,
	},
	{
		// At most one open attempt per team, enforced by the store so
		// concurrent requests cannot both insert one.
		name: "attempts_one_open_per_team",
		ddl: `CREATE UNIQUE INDEX IF NOT EXISTS attempts_one_open_per_team
			ON attempts (team_id) WHERE selected_option IS NULL`,
	},
}

// CreateTables applies the full schema. Idempotent.
func CreateTables(ctx context.Context, db Execer) error {
	for _, stmt := range createStatements {
		if _, err := db.Exec(ctx, stmt.ddl); err != nil {
			return fmt.Errorf("failed to create %s: %w", stmt.name, err)
		}
	}
	return nil
}

// DropTables removes all application tables. Destructive; used by the
// migrate CLI and the admin reset.
func DropTables(ctx context.Context, db Execer) error {
	_, err := db.Exec(ctx, `DROP TABLE IF EXISTS attempts, teams, emails CASCADE`)
	if err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	return nil
}
