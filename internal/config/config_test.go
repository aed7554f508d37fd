package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stevenraymond8592-create/AI-Commitment/internal/domain/carousel"
)

// TestValidate checks required fields and format validations for Config.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	// Missing socket.
	settings := new(Config)

	err := Validate(settings)
	require.Error(t, err)

	// Bad socket.
	settings = &Config{
		ServerAddress: "bad:address",
	}

	err = Validate(settings)
	require.Error(t, err)

	// Unknown policy.
	settings = &Config{
		ServerAddress: "127.0.0.1:0",
		Policy:        "bounce",
	}

	err = Validate(settings)
	require.Error(t, err)

	// Unknown log level.
	settings = &Config{
		ServerAddress: "127.0.0.1:0",
		LogLevel:      "chatty",
	}

	err = Validate(settings)
	require.ErrorIs(t, err, errUnknownLogLevel)

	// Okay, defaults filled in.
	settings = &Config{
		ServerAddress: "127.0.0.1:0",
	}

	err = Validate(settings)
	require.NoError(t, err)
	require.Equal(t, "wrap", settings.Policy)
	require.Equal(t, carousel.DefaultSettleDuration, settings.SettleDuration)
	require.Equal(t, DefaultTimeout, settings.Timeout)
	require.Equal(t, DefaultLogLevel, settings.LogLevel)
	require.Equal(t, carousel.Wrap, settings.NavigationPolicy())
}

// TestValidateLocal ensures the presenter settings do not need a server address.
func TestValidateLocal(t *testing.T) {
	t.Parallel()

	settings := &Config{Policy: "CLAMP"}

	require.NoError(t, ValidateLocal(settings))
	require.Equal(t, "clamp", settings.Policy)
	require.Equal(t, carousel.Clamp, settings.NavigationPolicy())
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	settings := &Config{
		ServerAddress:  "127.0.0.1:50061",
		DeckFile:       "deck.yaml",
		Policy:         "clamp",
		SettleDuration: 250 * time.Millisecond,
	}

	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, settings.ServerAddress, loaded.ServerAddress)
	require.Equal(t, settings.DeckFile, loaded.DeckFile)
	require.Equal(t, "clamp", loaded.Policy)
	require.Equal(t, 250*time.Millisecond, loaded.SettleDuration)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestLoadLocal_MissingFileUsesDefaults verifies the presenter starts without a settings file.
func TestLoadLocal_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadLocal(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoadLocal_ParsesDurations verifies human-readable durations in YAML.
func TestLoadLocal_ParsesDurations(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	contents := "policy: wrap\nsettle_duration: 1.5s\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), DefaultFilePermissions))

	cfg, err := LoadLocal(path)
	require.NoError(t, err)
	require.Equal(t, 1500*time.Millisecond, cfg.SettleDuration)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Empty(t, cfg.ServerAddress)
}
