package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bulk-trafficker/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.False(t, cfg.Psql.Enabled)
	assert.Equal(t, configs.SheetBackendXLSX, cfg.Sheet.BackendName())
	assert.Equal(t, configs.FilesBackendLocal, cfg.Files.BackendName())
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("PSQL_ENABLED", "true")
	t.Setenv("SHEET_BACKEND", " Google ")
	t.Setenv("SHEET_SPREADSHEET_ID", "sheet-1")
	t.Setenv("TRAFFICKING_PROFILE_ID", "1001")
	t.Setenv("TRAFFICKING_PROTECT_LISTS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.True(t, cfg.Psql.Enabled)
	assert.Equal(t, configs.SheetBackendGoogle, cfg.Sheet.BackendName())
	assert.Equal(t, "sheet-1", cfg.Sheet.SpreadsheetID)
	assert.Equal(t, "1001", cfg.Trafficking.ProfileID)
	assert.True(t, cfg.Trafficking.ProtectLists)
}

func TestLoggerUnknownValuesFallBack(t *testing.T) {
	l := configs.Logger{Level: "loud", Format: "xml"}
	assert.Equal(t, slog.LevelInfo, l.SlogLevel())
	assert.Equal(t, "text", l.SlogFormat())
}
