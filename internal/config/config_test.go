package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/civ-draft-bot/internal/config"
)

func TestLoadFrom(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"DISCORD_TOKEN":    "token-1234567890",
		"DISCORD_APP_ID":   "app",
		"DISCORD_GUILD_ID": "guild",
		"REDIS_URL":        "redis://localhost:6379/0",
		"REDIS_LOBBY_TTL":  "2h",
	})
	require.NoError(t, err)

	assert.Equal(t, "token-1234567890", cfg.Discord.Token)
	assert.Equal(t, "app", cfg.Discord.AppID)
	assert.Equal(t, "guild", cfg.Discord.GuildID)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, 2*time.Hour, cfg.Redis.LobbyTTL)
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{"DISCORD_TOKEN": "token"})
	require.NoError(t, err)

	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, 7*24*time.Hour, cfg.Redis.LobbyTTL)
}

func TestLoadFrom_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		environ map[string]string
	}{
		{name: "missing token", environ: map[string]string{}},
		{name: "bad ttl", environ: map[string]string{"DISCORD_TOKEN": "token", "REDIS_LOBBY_TTL": "soon"}},
		{name: "negative ttl", environ: map[string]string{"DISCORD_TOKEN": "token", "REDIS_LOBBY_TTL": "-1h"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.LoadFrom(tc.environ)
			assert.Error(t, err)
		})
	}
}

func TestRedactedToken(t *testing.T) {
	assert.Equal(t, "abcdefgh...wxyz", config.DiscordConfig{Token: "abcdefghijklmnopqrstuvwxyz"}.RedactedToken())
	assert.Equal(t, "****", config.DiscordConfig{Token: "short"}.RedactedToken())
}
