package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client, err := NewClient("redis://"+mr.Addr(), "test", zap.NewNop())
	require.NoError(t, err)

	return mr, client
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		expectError bool
	}{
		{
			name:        "Invalid URL",
			url:         "invalid://url",
			expectError: true,
		},
		{
			name:        "Empty URL",
			url:         "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.url, "test", zap.NewNop())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, client)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, client)
			}
		})
	}
}

func TestClient_GetSet(t *testing.T) {
	mr, client := setupTestRedis(t)
	defer mr.Close()

	ctx := context.Background()

	err := client.Set(ctx, "quiz:test:key", "value1", time.Minute)
	require.NoError(t, err)

	value, err := client.Get(ctx, "quiz:test:key")
	assert.NoError(t, err)
	assert.Equal(t, "value1", value)

	_, err = client.Get(ctx, "quiz:test:missing")
	assert.Error(t, err)
}

func TestClient_SetNX(t *testing.T) {
	mr, client := setupTestRedis(t)
	defer mr.Close()

	ctx := context.Background()

	ok, err := client.SetNX(ctx, "quiz:test:nx", "first", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.SetNX(ctx, "quiz:test:nx", "second", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	value, err := client.Get(ctx, "quiz:test:nx")
	require.NoError(t, err)
	assert.Equal(t, "first", value)
}

func TestClient_Exists(t *testing.T) {
	mr, client := setupTestRedis(t)
	defer mr.Close()

	ctx := context.Background()

	n, err := client.Exists(ctx, "quiz:test:absent")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	require.NoError(t, mr.Set("quiz:test:present", "1"))

	n, err = client.Exists(ctx, "quiz:test:present")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestClient_Delete(t *testing.T) {
	mr, client := setupTestRedis(t)
	defer mr.Close()

	ctx := context.Background()

	require.NoError(t, mr.Set("quiz:leaderboard", "[]"))
	require.NoError(t, mr.Set("quiz:teams:admin", "[]"))

	err := client.Delete(ctx, "quiz:leaderboard", "quiz:teams:admin")
	require.NoError(t, err)

	assert.False(t, mr.Exists("quiz:leaderboard"))
	assert.False(t, mr.Exists("quiz:teams:admin"))
}

func TestClient_TTLExpiry(t *testing.T) {
	mr, client := setupTestRedis(t)
	defer mr.Close()

	ctx := context.Background()

	err := client.Set(ctx, "quiz:test:ttl", "v", TTLLeaderboard)
	require.NoError(t, err)

	mr.FastForward(TTLLeaderboard + time.Second)

	_, err = client.Get(ctx, "quiz:test:ttl")
	assert.Error(t, err)
}

func TestClient_Health(t *testing.T) {
	mr, client := setupTestRedis(t)

	ctx := context.Background()
	assert.NoError(t, client.Health(ctx))

	mr.Close()
	assert.Error(t, client.Health(ctx))
}

func TestPrefixForLog(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{key: "quiz:leaderboard", expected: "quiz:leaderboard"},
		{key: "quiz:team:42:exists", expected: "quiz:team"},
		{key: "plain", expected: "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, prefixForLog(tt.key))
		})
	}
}
