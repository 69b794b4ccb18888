package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("PUNCHCARD_TZ", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	err = cfg.RequireToken()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_TOKEN")

	cfg.DiscordToken = "tok"
	assert.NoError(t, cfg.RequireToken())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "tok")
	t.Setenv("GUILD_ID", "")
	t.Setenv("PUNCHCARD_DB", "")
	t.Setenv("PUNCHCARD_TZ", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", cfg.DiscordToken)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.NotEmpty(t, cfg.DBPath)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "tok")
	t.Setenv("GUILD_ID", "123456789")
	t.Setenv("PUNCHCARD_DB", "/tmp/att.db")
	t.Setenv("PUNCHCARD_TZ", "Asia/Tokyo")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "123456789", cfg.GuildID)
	assert.Equal(t, "/tmp/att.db", cfg.DBPath)
	assert.Equal(t, "Asia/Tokyo", cfg.Location.String())
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_RejectsBadTimezone(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "tok")
	t.Setenv("PUNCHCARD_TZ", "Mars/Olympus")

	_, err := Load()
	assert.Error(t, err)
}
