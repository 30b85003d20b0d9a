package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN,required"`
	AppID   string `env:"DISCORD_APP_ID"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration. Without a URL lobbies live in memory.
type RedisConfig struct {
	URL      string        `env:"REDIS_URL"`
	LobbyTTL time.Duration `env:"REDIS_LOBBY_TTL" envDefault:"168h"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom loads configuration from the given variables instead of the process environment
func LoadFrom(environ map[string]string) (*Config, error) {
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Redis.LobbyTTL <= 0 {
		return nil, fmt.Errorf("REDIS_LOBBY_TTL must be positive, got %s", cfg.Redis.LobbyTTL)
	}

	return cfg, nil
}

// RedactedToken shows only the ends of the bot token for logging
func (c DiscordConfig) RedactedToken() string {
	if len(c.Token) <= 12 {
		return "****"
	}
	return c.Token[:8] + "..." + c.Token[len(c.Token)-4:]
}
