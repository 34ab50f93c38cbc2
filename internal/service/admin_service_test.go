package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jramir7254/phishing-backend/internal/domain"
)

type memGameData struct {
	resetCalls int
	lastSeed   []domain.Email
}

func (m *memGameData) Reset(_ context.Context, emails []domain.Email) error {
	m.resetCalls++
	m.lastSeed = emails
	return nil
}

func (m *memGameData) SeedEmails(_ context.Context, emails []domain.Email) error {
	return nil
}

func newTestAdminService(store *memStore, gameData *memGameData, seed []domain.Email) *AdminService {
	cache := NewCacheService(nil, zap.NewNop())
	return NewAdminService(&memTeams{store: store}, gameData, cache, seed, zap.NewNop())
}

func TestAdminService_ListTeams_IncludesJoinCodes(t *testing.T) {
	store := newMemStore(3)
	store.addTeam(1, "alpha")
	store.addTeam(2, "bravo")
	svc := newTestAdminService(store, &memGameData{}, nil)

	teams, err := svc.ListTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "alpha", teams[0].TeamName)
	assert.NotEmpty(t, teams[0].JoinCode)
}

func TestAdminService_DeleteTeam(t *testing.T) {
	store := newMemStore(3)
	store.addTeam(1, "alpha")
	svc := newTestAdminService(store, &memGameData{}, nil)
	ctx := context.Background()

	deleted, err := svc.DeleteTeam(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Empty(t, store.teams)

	// Deleting again reports not found rather than erroring.
	deleted, err = svc.DeleteTeam(ctx, 1)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestAdminService_Reset_ReseedsCorpus(t *testing.T) {
	store := newMemStore(3)
	gameData := &memGameData{}
	seed := []domain.Email{{Category: domain.CategoryLegit, Subject: "hello"}}
	svc := newTestAdminService(store, gameData, seed)

	err := svc.Reset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, gameData.resetCalls)
	assert.Equal(t, seed, gameData.lastSeed)
}
