package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/stevenraymond8592-create/AI-Commitment/internal/config"
	"github.com/stevenraymond8592-create/AI-Commitment/internal/logger"
	"github.com/stevenraymond8592-create/AI-Commitment/internal/service/common"
)

// Action selects what carousel-remote does.
type Action string

const (
	// ActionShow prints the current state.
	ActionShow Action = "show"
	// ActionNext moves to the next slide.
	ActionNext Action = "next"
	// ActionPrevious moves to the previous slide.
	ActionPrevious Action = "prev"
	// ActionGoto jumps to Options.Slide.
	ActionGoto Action = "goto"
	// ActionList prints every slide.
	ActionList Action = "list"
	// ActionWatch prints the state whenever it changes.
	ActionWatch Action = "watch"
)

// Options configures a carousel-remote invocation.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// ServerAddress overrides server address from config when specified.
	ServerAddress string
	// Action is the operation to perform.
	Action Action
	// Slide is the 1-based slide number for ActionGoto.
	Slide int
	// PollInterval is the delay between state checks for ActionWatch.
	PollInterval time.Duration
	// Output receives the printed state; os.Stdout when nil.
	Output io.Writer
}

// DefaultPollInterval is the watch interval when none is configured.
const DefaultPollInterval = 250 * time.Millisecond

var (
	// errSlideNumber is returned when goto receives a number below one.
	errSlideNumber = errors.New("slide numbers start at 1")
	// errUnknownAction is returned for an unsupported action.
	errUnknownAction = errors.New("unknown action")
)

// Run connects to the server and performs the requested action.
//
//nolint:cyclop // One branch per action keeps the dispatch readable.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "carousel-remote")

	if opts.Action == ActionGoto && opts.Slide < 1 {
		return fmt.Errorf("%w: got %d", errSlideNumber, opts.Slide)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	// Use server address from options if provided, otherwise use config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	// Connect to carousel server with timeout from config.
	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return err
	}

	// Close connection on function exit.
	defer func() {
		_ = client.Close()
	}()

	logger.DebugKV(ctx, "Sending carousel command", "server_address", serverAddress, "action", string(opts.Action))

	var state *common.RemoteState

	switch opts.Action {
	case ActionShow:
		state, err = client.GetState(ctx)
	case ActionNext:
		state, err = client.Next(ctx)
	case ActionPrevious:
		state, err = client.Previous(ctx)
	case ActionGoto:
		state, err = client.Navigate(ctx, opts.Slide-1)
	case ActionList:
		return list(ctx, client, out)
	case ActionWatch:
		return watch(ctx, client, out, opts.PollInterval)
	default:
		return fmt.Errorf("%w: %q", errUnknownAction, opts.Action)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, state.String())

	return err
}

// loadConfig reads settings, tolerating a missing file when the server
// address comes from the command line.
func loadConfig(opts *Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)

	switch {
	case err == nil:
		return cfg, nil
	case errors.Is(err, os.ErrNotExist) && opts.ServerAddress != "":
		return config.Default(), nil
	default:
		return nil, fmt.Errorf("load settings: %w", err)
	}
}

// list prints one line per slide, marking the active one.
func list(ctx context.Context, client *common.Client, out io.Writer) error {
	slides, err := client.ListSlides(ctx)
	if err != nil {
		return err
	}

	state, err := client.GetState(ctx)
	if err != nil {
		return err
	}

	for i, slide := range slides {
		marker := " "
		if i == state.ActiveIndex {
			marker = "*"
		}

		if _, err := fmt.Fprintf(out, "%s %d. %s - %s\n", marker, i+1, slide.Title, slide.Subtitle); err != nil {
			return err
		}
	}

	return nil
}

// watch polls the server and prints the state whenever the slide or the
// transition flag changes. It returns when ctx is cancelled.
func watch(ctx context.Context, client *common.Client, out io.Writer, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	var (
		lastGeneration    uint64
		lastTransitioning bool
		printed           bool
	)

	check := func() error {
		state, err := client.GetState(ctx)
		if err != nil {
			// Log error but keep watching through transient failures.
			logger.WarnKV(ctx, "GetState failed", "error", err)

			return nil
		}

		if printed && state.Generation == lastGeneration && state.IsTransitioning == lastTransitioning {
			return nil
		}

		printed = true
		lastGeneration = state.Generation
		lastTransitioning = state.IsTransitioning

		_, err = fmt.Fprintln(out, state.String())

		return err
	}

	// Check immediately before starting the polling loop.
	if err := check(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := check(); err != nil {
				return err
			}
		}
	}
}
