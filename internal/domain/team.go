package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminTeamID is the sentinel team ID carried by admin tokens. It never
// resolves to a row in the teams table.
const AdminTeamID = -1

// Team represents a registered quiz team
type Team struct {
	ID         int        `json:"id"`
	TeamName   string     `json:"teamName"`
	JoinCode   string     `json:"joinCode"`
	JoinedAt   time.Time  `json:"joinedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

// TeamScore is the admin view of a team: full record plus aggregate score.
// Join codes are only ever exposed through admin endpoints.
type TeamScore struct {
	ID           int        `json:"id"`
	TeamName     string     `json:"teamName"`
	JoinCode     string     `json:"joinCode"`
	JoinedAt     time.Time  `json:"joinedAt"`
	FinishedAt   *time.Time `json:"finishedAt,omitempty"`
	CorrectCount int        `json:"correctCount"`
}

// LeaderboardEntry is the public leaderboard row. Rows are ordered by team
// ID, not score; the ordering is part of the API contract.
type LeaderboardEntry struct {
	TeamID       int        `json:"teamId"`
	TeamName     string     `json:"teamName"`
	JoinedAt     time.Time  `json:"joinedAt"`
	FinishedAt   *time.Time `json:"finishedAt,omitempty"`
	CorrectCount int        `json:"correctCount"`
}

// Leaderboard converts an admin team listing to the public view,
// dropping join codes.
func Leaderboard(teams []TeamScore) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(teams))
	for _, t := range teams {
		entries = append(entries, LeaderboardEntry{
			TeamID:       t.ID,
			TeamName:     t.TeamName,
			JoinedAt:     t.JoinedAt,
			FinishedAt:   t.FinishedAt,
			CorrectCount: t.CorrectCount,
		})
	}
	return entries
}

// TeamClaims represents the JWT claims issued to a team (or the admin
// sentinel) at registration/login.
type TeamClaims struct {
	TeamID   int    `json:"teamId"`
	TeamName string `json:"teamName"`
	JoinCode string `json:"joinCode,omitempty"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// RegisterRequest is the body of POST /auth/register
type RegisterRequest struct {
	TeamName string `json:"teamName"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	JoinCode string `json:"joinCode"`
}

// TokenResponse carries a freshly signed bearer token
type TokenResponse struct {
	Token string `json:"token"`
}
