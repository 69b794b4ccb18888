package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the bot reads from the environment.
type Config struct {
	DiscordToken string
	GuildID      string
	DBPath       string
	Location     *time.Location
	LogLevel     slog.Level
}

// Load reads a .env file if one exists, then the process environment.
// The token is validated separately; only the bot needs it.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		GuildID:      os.Getenv("GUILD_ID"),
		DBPath:       os.Getenv("PUNCHCARD_DB"),
		Location:     time.UTC,
		LogLevel:     slog.LevelInfo,
	}

	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath()
	}

	if tz := os.Getenv("PUNCHCARD_TZ"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("loading PUNCHCARD_TZ %q: %w", tz, err)
		}
		cfg.Location = loc
	}

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(lvl)); err != nil {
			return nil, fmt.Errorf("parsing LOG_LEVEL %q: %w", lvl, err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// RequireToken rejects a configuration without Discord credentials.
func (c *Config) RequireToken() error {
	if c.DiscordToken == "" {
		return fmt.Errorf("DISCORD_TOKEN is not set")
	}
	return nil
}

// DefaultDBPath places the database under the user's home directory,
// falling back to the working directory when home is unknown.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "punchcard.db"
	}
	return filepath.Join(home, ".punchcard", "punchcard.db")
}
