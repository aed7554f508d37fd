package present

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stevenraymond8592-create/AI-Commitment/internal/config"
	"github.com/stevenraymond8592-create/AI-Commitment/internal/repository/deck"
)

func TestRun_QuitsOnKey(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "present.log")

	var out bytes.Buffer

	err := Run(context.Background(), &Options{
		ConfigPath: filepath.Join(dir, "missing.yaml"),
		LogFile:    logFile,
		Input:      strings.NewReader("q"),
		Output:     &out,
	})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Process Over Product")

	contents, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(contents), "Presenter started")
	require.Contains(t, string(contents), "Presenter stopped")
}

func TestRun_InvalidPolicy(t *testing.T) {
	err := Run(context.Background(), &Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
		Policy:     "bounce",
	})
	require.ErrorContains(t, err, "policy flag")
}

func TestRun_MissingDeck(t *testing.T) {
	dir := t.TempDir()

	err := Run(context.Background(), &Options{
		ConfigPath: filepath.Join(dir, "missing.yaml"),
		DeckFile:   filepath.Join(dir, "missing-deck.yaml"),
	})
	require.ErrorIs(t, err, deck.ErrNotFound)
}

func TestApplyOverrides(t *testing.T) {
	t.Parallel()

	settings := config.Default()

	err := applyOverrides(settings, &Options{
		DeckFile:       "custom.yaml",
		Policy:         "CLAMP",
		SettleDuration: 100 * time.Millisecond,
	})
	require.NoError(t, err)
	require.Equal(t, "custom.yaml", settings.DeckFile)
	require.Equal(t, "clamp", settings.Policy)
	require.Equal(t, "100ms", settings.SettleDuration.String())
}

func TestExportDeck(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "deck.yaml")

	require.NoError(t, ExportDeck(ctx, &ExportOptions{Path: path}))

	exported, err := deck.NewFileRepository(path).Load(ctx)
	require.NoError(t, err)

	builtIn, err := deck.Default()
	require.NoError(t, err)
	require.Equal(t, builtIn.Slides(), exported.Slides())
	require.Equal(t, builtIn.Info(), exported.Info())

	err = ExportDeck(ctx, &ExportOptions{Path: path})
	require.ErrorIs(t, err, ErrFileExists)

	require.NoError(t, ExportDeck(ctx, &ExportOptions{Path: path, Force: true}))
}
