package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/jramir7254/phishing-backend/internal/seed"
	"github.com/jramir7254/phishing-backend/pkg/database"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./cmd/migrate [drop|up|seed]")
		os.Exit(1)
	}

	command := os.Args[1]

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close(ctx)

	switch command {
	case "drop":
		if err := database.DropTables(ctx, conn); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		fmt.Println("All tables dropped successfully")

	case "up":
		if err := database.CreateTables(ctx, conn); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
		fmt.Println("All tables created successfully")

	case "seed":
		if err := seedEmails(ctx, conn); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println("Usage: go run ./cmd/migrate [drop|up|seed]")
		os.Exit(1)
	}
}

// seedEmails inserts the email corpus when the table is empty, matching
// the server's startup seeding.
func seedEmails(ctx context.Context, conn *pgx.Conn) error {
	var count int
	if err := conn.QueryRow(ctx, `SELECT COUNT(*) FROM emails`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count emails: %w", err)
	}
	if count > 0 {
		fmt.Printf("Emails already seeded (%d rows), skipping\n", count)
		return nil
	}

	emails := seed.Emails()
	query := `
		INSERT INTO emails (category, subject, sent_from, sent_to, date, html)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, e := range emails {
		if _, err := conn.Exec(ctx, query, e.Category, e.Subject, e.SentFrom, e.SentTo, e.Date, e.HTML); err != nil {
			return fmt.Errorf("failed to seed email %q: %w", e.Subject, err)
		}
	}

	fmt.Printf("Seeded %d emails\n", len(emails))
	return nil
}
