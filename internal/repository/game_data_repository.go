package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jramir7254/phishing-backend/internal/domain"
	"github.com/jramir7254/phishing-backend/pkg/database"
)

type PostgresGameDataRepository struct {
	db *database.PostgresDB
}

func NewGameDataRepository(db *database.PostgresDB) *PostgresGameDataRepository {
	return &PostgresGameDataRepository{db: db}
}

// Reset drops all gameplay state and reseeds the email corpus in one
// transaction. Destructive; callers must ensure no gameplay requests are
// in flight.
func (r *PostgresGameDataRepository) Reset(ctx context.Context, emails []domain.Email) error {
	return pgx.BeginFunc(ctx, r.db.Pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `TRUNCATE attempts, teams, emails RESTART IDENTITY CASCADE`)
		if err != nil {
			return fmt.Errorf("failed to truncate gameplay tables: %w", err)
		}
		return insertEmails(ctx, tx, emails)
	})
}

// SeedEmails inserts the email corpus when the table is empty, so startup
// seeding is idempotent across restarts.
func (r *PostgresGameDataRepository) SeedEmails(ctx context.Context, emails []domain.Email) error {
	return pgx.BeginFunc(ctx, r.db.Pool, func(tx pgx.Tx) error {
		var count int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM emails`).Scan(&count); err != nil {
			return fmt.Errorf("failed to count emails: %w", err)
		}
		if count > 0 {
			return nil
		}
		return insertEmails(ctx, tx, emails)
	})
}

func insertEmails(ctx context.Context, tx pgx.Tx, emails []domain.Email) error {
	query := `
		INSERT INTO emails (category, subject, sent_from, sent_to, date, html)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, e := range emails {
		if _, err := tx.Exec(ctx, query, e.Category, e.Subject, e.SentFrom, e.SentTo, e.Date, e.HTML); err != nil {
			return fmt.Errorf("failed to seed email %q: %w", e.Subject, err)
		}
	}
	return nil
}
