package remote

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRun_GotoValidatesSlide ensures slide numbers below one are rejected before dialing.
func TestRun_GotoValidatesSlide(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), &Options{
		ServerAddress: "127.0.0.1:1",
		Action:        ActionGoto,
		Slide:         0,
	})
	require.ErrorIs(t, err, errSlideNumber)
}

// TestRun_UnknownAction verifies unsupported actions fail without a server round trip.
func TestRun_UnknownAction(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), &Options{
		ConfigPath:    filepath.Join(t.TempDir(), "missing.yaml"),
		ServerAddress: "127.0.0.1:1",
		Action:        "shuffle",
	})
	require.ErrorIs(t, err, errUnknownAction)
}

// TestLoadConfig_RequiresAddress verifies a missing settings file is fatal without an override.
func TestLoadConfig_RequiresAddress(t *testing.T) {
	t.Parallel()

	_, err := loadConfig(&Options{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)

	cfg, err := loadConfig(&Options{
		ConfigPath:    filepath.Join(t.TempDir(), "missing.yaml"),
		ServerAddress: "127.0.0.1:50061",
	})
	require.NoError(t, err)
	require.NotNil(t, cfg)
}
