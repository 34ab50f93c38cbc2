package redis

import "fmt"

// KeyBuilder provides environment-aware Redis key building so staging and
// production can share an instance without colliding.
type KeyBuilder struct {
	prefix string
}

// NewKeyBuilder creates a new key builder with environment-based prefix
func NewKeyBuilder(environment string) *KeyBuilder {
	prefix := "prod"
	if environment == "development" || environment == "staging" || environment == "test" {
		prefix = "staging"
	}
	return &KeyBuilder{prefix: prefix}
}

// BuildKey constructs a Redis key with the environment prefix
func (kb *KeyBuilder) BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, key)
}

// GetPrefix returns the current environment prefix
func (kb *KeyBuilder) GetPrefix() string {
	return kb.prefix
}

func (kb *KeyBuilder) KeyLeaderboard() string {
	return kb.BuildKey(KeyLeaderboard)
}

func (kb *KeyBuilder) KeyAdminTeams() string {
	return kb.BuildKey(KeyAdminTeams)
}

func (kb *KeyBuilder) KeyTeamExists(teamID int) string {
	return kb.BuildKey(fmt.Sprintf(KeyTeamExists, teamID))
}
