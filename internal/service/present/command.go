package present

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stevenraymond8592-create/AI-Commitment/internal/config"
	"github.com/stevenraymond8592-create/AI-Commitment/internal/domain/carousel"
	"github.com/stevenraymond8592-create/AI-Commitment/internal/logger"
	"github.com/stevenraymond8592-create/AI-Commitment/internal/repository/deck"
	"github.com/stevenraymond8592-create/AI-Commitment/internal/tui"
)

// Options controls the carousel-present process.
type Options struct {
	// ConfigPath specifies the path to settings YAML file. A missing file
	// means default settings.
	ConfigPath string
	// DeckFile overrides the deck file from the settings.
	DeckFile string
	// Policy overrides the boundary policy from the settings.
	Policy string
	// SettleDuration overrides the settle window when positive.
	SettleDuration time.Duration
	// LogFile receives log output while the presenter owns the terminal.
	// Logs are discarded when empty.
	LogFile string
	// Input and Output replace the terminal, mainly for tests.
	Input  io.Reader
	Output io.Writer
}

// ExportOptions controls export-deck.
type ExportOptions struct {
	// Path is where the deck YAML is written.
	Path string
	// DeckFile is the source deck; the built-in deck when empty.
	DeckFile string
	// Force allows overwriting an existing file.
	Force bool
}

// ErrFileExists is returned by ExportDeck when the target exists and Force is off.
var ErrFileExists = errors.New("file already exists")

// Run shows the deck in the terminal until the user quits or ctx is canceled.
func Run(ctx context.Context, opts *Options) error {
	settings, err := config.LoadLocal(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if err = applyOverrides(settings, opts); err != nil {
		return err
	}

	log, closeLog, err := openLog(opts.LogFile, settings.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	// The terminal belongs to the program, so even the global logger is redirected.
	previous := logger.Logger()
	logger.SetLogger(log)

	defer logger.SetLogger(previous)

	ctx = logger.WithName(logger.ToContext(ctx, log), "carousel-present")

	slides, err := deck.Open(ctx, settings.DeckFile)
	if err != nil {
		return fmt.Errorf("open deck: %w", err)
	}

	controller := carousel.NewController(
		slides,
		carousel.WithPolicy(settings.NavigationPolicy()),
		carousel.WithSettleDuration(settings.SettleDuration),
	)
	defer controller.Close()

	changes := make(chan struct{}, 1)
	unsubscribe := controller.Subscribe(tui.Notifier(changes))

	defer unsubscribe()

	logger.InfoKV(
		ctx,
		"Presenter started",
		"slides", slides.Len(),
		"policy", controller.Policy().String(),
		"settle_duration", controller.SettleDuration().String(),
	)

	// Cancelled when Run returns, which also releases the model's pending
	// wait on changes.
	programCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	programOptions := []tea.ProgramOption{tea.WithContext(programCtx)}
	if opts.Input != nil {
		programOptions = append(programOptions, tea.WithInput(opts.Input))
	}

	if opts.Output != nil {
		programOptions = append(programOptions, tea.WithOutput(opts.Output))
	} else {
		programOptions = append(programOptions, tea.WithAltScreen())
	}

	program := tea.NewProgram(tui.NewModel(controller, tui.WithChanges(changes), tui.WithDone(programCtx.Done())), programOptions...)

	if _, err = program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			logger.Info(ctx, "Presenter interrupted")

			return nil
		}

		return fmt.Errorf("run presenter: %w", err)
	}

	state := controller.Snapshot()
	logger.InfoKV(ctx, "Presenter stopped", "active_index", state.ActiveIndex, "generation", state.Generation)

	return nil
}

// ExportDeck writes the deck as YAML so it can be edited and passed back
// with --deck.
func ExportDeck(ctx context.Context, opts *ExportOptions) error {
	if opts.Path == "" {
		return errors.New("export path is empty")
	}

	if !opts.Force {
		if _, err := os.Stat(opts.Path); err == nil {
			return fmt.Errorf("%w: %s", ErrFileExists, opts.Path)
		}
	}

	slides, err := deck.Open(ctx, opts.DeckFile)
	if err != nil {
		return fmt.Errorf("open deck: %w", err)
	}

	if err = deck.NewFileRepository(opts.Path).Save(ctx, slides); err != nil {
		return fmt.Errorf("export deck: %w", err)
	}

	logger.InfoKV(ctx, "Deck exported", "path", opts.Path, "slides", slides.Len())

	return nil
}

// applyOverrides merges command line values into the settings.
func applyOverrides(settings *config.Config, opts *Options) error {
	if opts.DeckFile != "" {
		settings.DeckFile = opts.DeckFile
	}

	if opts.Policy != "" {
		policy, err := carousel.ParsePolicy(opts.Policy)
		if err != nil {
			return fmt.Errorf("policy flag: %w", err)
		}

		settings.Policy = policy.String()
	}

	if opts.SettleDuration > 0 {
		settings.SettleDuration = opts.SettleDuration
	}

	return nil
}

// openLog returns the presenter logger and a function releasing its file.
func openLog(path, level string) (*zap.SugaredLogger, func(), error) {
	if path == "" {
		return logger.Discard(), func() {}, nil
	}

	lvl, ok := logger.ParseLogLevel(level)
	if !ok {
		lvl = zapcore.InfoLevel
	}

	//nolint:gosec // The log path is chosen by the operator.
	file, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_APPEND|os.O_WRONLY, config.DefaultFilePermissions)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	log := logger.NewWithWriter(zapcore.DebugLevel, zapcore.AddSync(file), logger.WithLevel(lvl))

	return log, func() {
		_ = log.Sync()
		_ = file.Close()
	}, nil
}
