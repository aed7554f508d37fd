package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/stevenraymond8592-create/AI-Commitment/internal/domain/carousel"
	"github.com/stevenraymond8592-create/AI-Commitment/internal/logger"
)

// Config holds the settings shared by the carousel binaries.
type Config struct {
	// ServerAddress is the gRPC address of the carousel server.
	ServerAddress string `yaml:"server_addr"`
	// DeckFile is an optional path to a deck YAML file. Empty selects the built-in deck.
	DeckFile string `yaml:"deck_file,omitempty"`
	// Policy is the navigation boundary policy: "wrap" or "clamp".
	Policy string `yaml:"policy"`
	// SettleDuration is how long the transition flag stays raised after a slide change.
	SettleDuration time.Duration `yaml:"settle_duration"`
	// Timeout is the duration for network operations and RPC calls.
	Timeout time.Duration `yaml:"timeout"`
	// LogLevel is the minimum zap level name written to the log.
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the default filename for carousel settings.
	DefaultConfigFilename = "guiding-commitments-settings.yaml"

	// DefaultServerAddress is used by Default for local setups.
	DefaultServerAddress = "127.0.0.1:50061"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerSocketRequired is returned when server address is missing.
	errServerSocketRequired = errors.New("server address must be provided")
	// errUnknownLogLevel is returned for log level names zap does not know.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Default returns settings for a local setup with every default applied.
func Default() *Config {
	return &Config{
		ServerAddress:  DefaultServerAddress,
		Policy:         carousel.DefaultPolicy.String(),
		SettleDuration: carousel.DefaultSettleDuration,
		Timeout:        DefaultTimeout,
		LogLevel:       DefaultLogLevel,
	}
}

// Load reads configuration from the provided path and validates every field,
// including the server address.
func Load(path string) (*Config, error) {
	cfg, err := read(path)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadLocal reads configuration for the standalone presenter, which needs no
// server. A missing file yields Default.
func LoadLocal(path string) (*Config, error) {
	cfg, err := read(path)

	switch {
	case errors.Is(err, os.ErrNotExist):
		return Default(), nil
	case err != nil:
		return nil, err
	}

	if err := ValidateLocal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes Config to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the server address and then every local setting.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.ServerAddress == "" {
		return errServerSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", settings.ServerAddress); err != nil {
		return fmt.Errorf("invalid server socket: %w", err)
	}

	return ValidateLocal(settings)
}

// ValidateLocal checks the settings that do not involve the network and
// fills in defaults for empty values.
func ValidateLocal(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	policy, err := carousel.ParsePolicy(settings.Policy)
	if err != nil {
		return err
	}

	settings.Policy = policy.String()

	// Set default settle window if not specified.
	if settings.SettleDuration <= 0 {
		settings.SettleDuration = carousel.DefaultSettleDuration
	}

	// Set default timeout if not specified.
	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}

	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, settings.LogLevel)
	}

	return nil
}

// NavigationPolicy returns the parsed boundary policy.
// Settings that passed validation always parse.
func (c *Config) NavigationPolicy() carousel.Policy {
	policy, err := carousel.ParsePolicy(c.Policy)
	if err != nil {
		return carousel.DefaultPolicy
	}

	return policy
}

// read loads and decodes the YAML file without validating it.
func read(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	return &cfg, nil
}
