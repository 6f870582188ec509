package cli

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bulk-trafficker/internal/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Config{}
	cfg.Sheet.Backend = "xlsx"
	cfg.Sheet.Path = filepath.Join(t.TempDir(), "missing.xlsx")
	cfg.Files.Backend = "local"
	cfg.Files.Dir = t.TempDir()
	return &App{Config: cfg, Logger: slog.New(slog.DiscardHandler)}
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootHelpListsCommands(t *testing.T) {
	out, err := execute(t, newTestApp(t))
	require.NoError(t, err)
	for _, name := range []string{"run", "list", "serve", "migrate"} {
		assert.Contains(t, out, name)
	}
}

func TestRunRequiresSheet(t *testing.T) {
	_, err := execute(t, newTestApp(t), "run")
	assert.Error(t, err)
}

func TestMigrateRequiresJournal(t *testing.T) {
	_, err := execute(t, newTestApp(t), "migrate")
	assert.ErrorContains(t, err, "PSQL_ENABLED")
}

func TestUnknownSheetBackend(t *testing.T) {
	app := newTestApp(t)
	app.Config.Sheet.Backend = "csv"

	_, err := execute(t, app, "list", "sites")
	assert.ErrorContains(t, err, `unknown sheet backend "csv"`)
}
