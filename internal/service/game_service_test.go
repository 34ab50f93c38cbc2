package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jramir7254/phishing-backend/internal/domain"
	"github.com/jramir7254/phishing-backend/internal/repository"
)

// memStore is an in-memory stand-in for the attempt tables. InTeamTx
// serializes callbacks with a mutex, mirroring the per-team lock the real
// store takes.
type memStore struct {
	mu       sync.Mutex
	emails   []domain.Email
	attempts map[int]*domain.Attempt
	teams    map[int]*domain.Team
	nextID   int
}

func newMemStore(emailCount int) *memStore {
	s := &memStore{
		attempts: make(map[int]*domain.Attempt),
		teams:    make(map[int]*domain.Team),
		nextID:   1,
	}
	for i := 1; i <= emailCount; i++ {
		category := domain.CategoryLegit
		if i%2 == 0 {
			category = domain.CategoryPhishing
		}
		s.emails = append(s.emails, domain.Email{
			ID:       i,
			Category: category,
			Subject:  "email",
			SentFrom: "sender@example.com",
			SentTo:   "team@example.com",
			Date:     "Mon, 12 Jan 2026 09:30:00 +0000",
			HTML:     "<p>body</p>",
		})
	}
	return s
}

func (s *memStore) addTeam(id int, name string) {
	s.teams[id] = &domain.Team{ID: id, TeamName: name, JoinCode: "CODE", JoinedAt: time.Now()}
}

func (s *memStore) InTeamTx(_ context.Context, _ int, fn func(tx repository.AttemptTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&memTx{store: s})
}

func (s *memStore) ListResults(_ context.Context, teamID int) ([]domain.AttemptResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []domain.AttemptResult
	for id := 1; id < s.nextID; id++ {
		a, ok := s.attempts[id]
		if !ok || a.TeamID != teamID {
			continue
		}
		email := s.email(a.EmailID)
		selection := ""
		if a.SelectedOption != nil {
			selection = *a.SelectedOption
		}
		results = append(results, domain.AttemptResult{
			AttemptID:      a.ID,
			TeamID:         a.TeamID,
			EmailID:        a.EmailID,
			SelectedOption: a.SelectedOption,
			Reasoning:      a.Reasoning,
			CorrectAnswer:  email.Category,
			IsCorrect:      domain.ScoreAttempt(selection, email.Category),
		})
	}
	return results, nil
}

func (s *memStore) email(id int) domain.Email {
	for _, e := range s.emails {
		if e.ID == id {
			return e
		}
	}
	return domain.Email{}
}

type memTx struct {
	store *memStore
}

func (t *memTx) CountSubmitted(_ context.Context, teamID int) (int, error) {
	count := 0
	for _, a := range t.store.attempts {
		if a.TeamID == teamID && a.SelectedOption != nil {
			count++
		}
	}
	return count, nil
}

func (t *memTx) MarkFinished(_ context.Context, teamID int) error {
	if team, ok := t.store.teams[teamID]; ok && team.FinishedAt == nil {
		now := time.Now()
		team.FinishedAt = &now
	}
	return nil
}

func (t *memTx) GetOpen(_ context.Context, teamID int) (*domain.Attempt, error) {
	for _, a := range t.store.attempts {
		if a.TeamID == teamID && a.SelectedOption == nil {
			return a, nil
		}
	}
	return nil, nil
}

func (t *memTx) PickRandomEmail(_ context.Context, teamID int) (*domain.Email, error) {
	seen := make(map[int]bool)
	for _, a := range t.store.attempts {
		if a.TeamID == teamID {
			seen[a.EmailID] = true
		}
	}
	for _, e := range t.store.emails {
		if !seen[e.ID] {
			email := e
			return &email, nil
		}
	}
	return nil, nil
}

func (t *memTx) Insert(_ context.Context, teamID, emailID int) (int, error) {
	id := t.store.nextID
	t.store.nextID++
	t.store.attempts[id] = &domain.Attempt{
		ID:        id,
		TeamID:    teamID,
		EmailID:   emailID,
		CreatedAt: time.Now(),
	}
	return id, nil
}

func (t *memTx) GetByID(_ context.Context, attemptID int) (*domain.Attempt, error) {
	a, ok := t.store.attempts[attemptID]
	if !ok {
		return nil, nil
	}
	return a, nil
}

func (t *memTx) SubmitAnswer(_ context.Context, attemptID int, selection string, reasoning *string) (bool, error) {
	a, ok := t.store.attempts[attemptID]
	if !ok || a.SelectedOption != nil {
		return false, nil
	}
	a.SelectedOption = &selection
	a.Reasoning = reasoning
	return true, nil
}

func (t *memTx) GetView(_ context.Context, attemptID int) (*domain.AttemptView, error) {
	a, ok := t.store.attempts[attemptID]
	if !ok {
		return nil, nil
	}
	email := t.store.email(a.EmailID)
	view := &domain.AttemptView{
		AttemptID:      a.ID,
		SelectedOption: a.SelectedOption,
		Reasoning:      a.Reasoning,
		Email:          email.Content(),
	}
	if a.SelectedOption != nil {
		correct := domain.ScoreAttempt(*a.SelectedOption, email.Category)
		view.IsCorrect = &correct
		view.CorrectAnswer = email.Category
	}
	return view, nil
}

// memTeams implements the team lookups the game service needs.
type memTeams struct {
	store *memStore
}

func (m *memTeams) Create(_ context.Context, teamName, joinCode string) (*domain.Team, error) {
	return nil, nil
}

func (m *memTeams) GetByID(_ context.Context, id int) (*domain.Team, error) {
	team, ok := m.store.teams[id]
	if !ok {
		return nil, nil
	}
	return team, nil
}

func (m *memTeams) GetByName(_ context.Context, teamName string) (*domain.Team, error) {
	return nil, nil
}

func (m *memTeams) GetByJoinCode(_ context.Context, joinCode string) (*domain.Team, error) {
	return nil, nil
}

func (m *memTeams) Delete(_ context.Context, id int) (bool, error) {
	if _, ok := m.store.teams[id]; !ok {
		return false, nil
	}
	delete(m.store.teams, id)
	return true, nil
}

func (m *memTeams) ListWithScores(_ context.Context) ([]domain.TeamScore, error) {
	var scores []domain.TeamScore
	for id := 1; id <= len(m.store.teams)+10; id++ {
		team, ok := m.store.teams[id]
		if !ok {
			continue
		}
		correct := 0
		for _, a := range m.store.attempts {
			if a.TeamID != id || a.SelectedOption == nil {
				continue
			}
			if domain.ScoreAttempt(*a.SelectedOption, m.store.email(a.EmailID).Category) {
				correct++
			}
		}
		scores = append(scores, domain.TeamScore{
			ID:           team.ID,
			TeamName:     team.TeamName,
			JoinCode:     team.JoinCode,
			JoinedAt:     team.JoinedAt,
			FinishedAt:   team.FinishedAt,
			CorrectCount: correct,
		})
	}
	return scores, nil
}

func newTestGameService(store *memStore, threshold int) *GameService {
	cache := NewCacheService(nil, zap.NewNop())
	return NewGameService(store, &memTeams{store: store}, cache, threshold, zap.NewNop())
}

func TestGameService_GetOrCreateAttempt_CreatesAndReuses(t *testing.T) {
	store := newMemStore(5)
	store.addTeam(1, "alpha")
	svc := newTestGameService(store, 20)
	ctx := context.Background()

	first, err := svc.GetOrCreateAttempt(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, first.Attempt)
	assert.False(t, first.Done)
	assert.Equal(t, 0, first.Count)
	assert.Nil(t, first.Attempt.SelectedOption)

	// A second request without a submission returns the same attempt.
	second, err := svc.GetOrCreateAttempt(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, second.Attempt)
	assert.Equal(t, first.Attempt.AttemptID, second.Attempt.AttemptID)
	assert.Len(t, store.attempts, 1)
}

func TestGameService_Submit_ScoresAndAdvances(t *testing.T) {
	store := newMemStore(5)
	store.addTeam(1, "alpha")
	svc := newTestGameService(store, 20)
	ctx := context.Background()

	state, err := svc.GetOrCreateAttempt(ctx, 1)
	require.NoError(t, err)
	attemptID := state.Attempt.AttemptID

	// Email 1 in the fixture is legit.
	result, err := svc.Submit(ctx, 1, attemptID, "legit", "domain matches")
	require.NoError(t, err)
	assert.False(t, result.Error)
	assert.False(t, result.Done)
	assert.Equal(t, 1, result.Count)
	require.NotNil(t, result.Updated)
	require.NotNil(t, result.Updated.IsCorrect)
	assert.True(t, *result.Updated.IsCorrect)
	assert.Equal(t, domain.CategoryLegit, result.Updated.CorrectAnswer)
	require.NotNil(t, result.Next)
	assert.NotEqual(t, attemptID, result.Next.AttemptID)
	assert.Nil(t, result.Next.SelectedOption)
}

func TestGameService_Submit_IncorrectAnswerStillAdvances(t *testing.T) {
	store := newMemStore(5)
	store.addTeam(1, "alpha")
	svc := newTestGameService(store, 20)
	ctx := context.Background()

	state, err := svc.GetOrCreateAttempt(ctx, 1)
	require.NoError(t, err)

	result, err := svc.Submit(ctx, 1, state.Attempt.AttemptID, "phishing", "")
	require.NoError(t, err)
	assert.False(t, result.Error)
	require.NotNil(t, result.Updated.IsCorrect)
	assert.False(t, *result.Updated.IsCorrect)
	assert.Equal(t, 1, result.Count)
	require.NotNil(t, result.Next)
}

func TestGameService_Submit_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid selection", func(t *testing.T) {
		store := newMemStore(5)
		store.addTeam(1, "alpha")
		svc := newTestGameService(store, 20)

		result, err := svc.Submit(ctx, 1, 1, "spam", "")
		require.NoError(t, err)
		assert.True(t, result.Error)
		assert.Equal(t, "Selection must be 'legit' or 'phishing'", result.Message)
	})

	t.Run("unknown attempt", func(t *testing.T) {
		store := newMemStore(5)
		store.addTeam(1, "alpha")
		svc := newTestGameService(store, 20)

		result, err := svc.Submit(ctx, 1, 999, "legit", "")
		require.NoError(t, err)
		assert.True(t, result.Error)
		assert.Equal(t, "Attempt not found", result.Message)
	})

	t.Run("foreign attempt", func(t *testing.T) {
		store := newMemStore(5)
		store.addTeam(1, "alpha")
		store.addTeam(2, "bravo")
		svc := newTestGameService(store, 20)

		state, err := svc.GetOrCreateAttempt(ctx, 1)
		require.NoError(t, err)

		result, err := svc.Submit(ctx, 2, state.Attempt.AttemptID, "legit", "")
		require.NoError(t, err)
		assert.True(t, result.Error)
		assert.Equal(t, "Attempt does not belong to this team", result.Message)
	})

	t.Run("double submission", func(t *testing.T) {
		store := newMemStore(5)
		store.addTeam(1, "alpha")
		svc := newTestGameService(store, 20)

		state, err := svc.GetOrCreateAttempt(ctx, 1)
		require.NoError(t, err)
		attemptID := state.Attempt.AttemptID

		first, err := svc.Submit(ctx, 1, attemptID, "legit", "")
		require.NoError(t, err)
		assert.False(t, first.Error)

		second, err := svc.Submit(ctx, 1, attemptID, "phishing", "")
		require.NoError(t, err)
		assert.True(t, second.Error)
		assert.Equal(t, "Attempt already submitted", second.Message)

		// The recorded answer is unchanged.
		assert.Equal(t, "legit", *store.attempts[attemptID].SelectedOption)
	})
}

func TestGameService_NoEmailRepeats(t *testing.T) {
	store := newMemStore(5)
	store.addTeam(1, "alpha")
	svc := newTestGameService(store, 20)
	ctx := context.Background()

	seen := make(map[int]bool)
	for {
		state, err := svc.GetOrCreateAttempt(ctx, 1)
		require.NoError(t, err)
		if state.Done {
			break
		}
		emailID := state.Attempt.Email.ID
		assert.False(t, seen[emailID], "email %d shown twice", emailID)
		seen[emailID] = true

		_, err = svc.Submit(ctx, 1, state.Attempt.AttemptID, "legit", "")
		require.NoError(t, err)
	}

	assert.Len(t, seen, 5)
}

func TestGameService_ThresholdCompletion(t *testing.T) {
	store := newMemStore(10)
	store.addTeam(1, "alpha")
	svc := newTestGameService(store, 3)
	ctx := context.Background()

	var last *domain.SubmitResult
	for i := 0; i < 3; i++ {
		state, err := svc.GetOrCreateAttempt(ctx, 1)
		require.NoError(t, err)
		require.False(t, state.Done)

		last, err = svc.Submit(ctx, 1, state.Attempt.AttemptID, "legit", "")
		require.NoError(t, err)
	}

	require.NotNil(t, last)
	assert.True(t, last.Done)
	assert.Equal(t, 3, last.Count)
	assert.Equal(t, "Team has completed all 3 attempts", last.Message)
	assert.Nil(t, last.Next)

	// Completion stamps the team and further requests stay done.
	require.NotNil(t, store.teams[1].FinishedAt)

	state, err := svc.GetOrCreateAttempt(ctx, 1)
	require.NoError(t, err)
	assert.True(t, state.Done)
	assert.Equal(t, 3, state.Count)
	assert.Nil(t, state.Attempt)
}

func TestGameService_ContentExhaustion(t *testing.T) {
	store := newMemStore(2)
	store.addTeam(1, "alpha")
	svc := newTestGameService(store, 20)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		state, err := svc.GetOrCreateAttempt(ctx, 1)
		require.NoError(t, err)
		require.False(t, state.Done)

		result, err := svc.Submit(ctx, 1, state.Attempt.AttemptID, "phishing", "")
		require.NoError(t, err)
		assert.False(t, result.Error)

		if i == 1 {
			// Last email answered: done without an error variant.
			assert.True(t, result.Done)
			assert.Nil(t, result.Next)
		}
	}

	state, err := svc.GetOrCreateAttempt(ctx, 1)
	require.NoError(t, err)
	assert.True(t, state.Done)
	assert.Equal(t, "No unused emails remain", state.Message)
}

func TestGameService_TeamResults(t *testing.T) {
	store := newMemStore(3)
	store.addTeam(1, "alpha")
	svc := newTestGameService(store, 20)
	ctx := context.Background()

	state, err := svc.GetOrCreateAttempt(ctx, 1)
	require.NoError(t, err)
	_, err = svc.Submit(ctx, 1, state.Attempt.AttemptID, "legit", "looks fine")
	require.NoError(t, err)

	results, err := svc.TeamResults(ctx, 1)
	require.NoError(t, err)
	// One answered plus the freshly opened attempt.
	require.Len(t, results, 2)
	assert.True(t, results[0].IsCorrect)
	assert.Equal(t, domain.CategoryLegit, results[0].CorrectAnswer)
	require.NotNil(t, results[0].Reasoning)
	assert.Equal(t, "looks fine", *results[0].Reasoning)
}

func TestGameService_Leaderboard_OrderedByTeamID(t *testing.T) {
	store := newMemStore(5)
	store.addTeam(1, "alpha")
	store.addTeam(2, "bravo")
	svc := newTestGameService(store, 20)
	ctx := context.Background()

	// Team 2 scores one correct answer; team 1 has none.
	state, err := svc.GetOrCreateAttempt(ctx, 2)
	require.NoError(t, err)
	_, err = svc.Submit(ctx, 2, state.Attempt.AttemptID, "legit", "")
	require.NoError(t, err)

	entries, err := svc.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].TeamID)
	assert.Equal(t, 0, entries[0].CorrectCount)
	assert.Equal(t, 2, entries[1].TeamID)
	assert.Equal(t, 1, entries[1].CorrectCount)
}

func TestGameService_TeamExists(t *testing.T) {
	store := newMemStore(1)
	store.addTeam(1, "alpha")
	svc := newTestGameService(store, 20)
	ctx := context.Background()

	exists, err := svc.TeamExists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.TeamExists(ctx, 99)
	require.NoError(t, err)
	assert.False(t, exists)
}
