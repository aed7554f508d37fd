package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/stevenraymond8592-create/AI-Commitment/internal/config"
	"github.com/stevenraymond8592-create/AI-Commitment/internal/service/remote"
	"github.com/stevenraymond8592-create/AI-Commitment/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// serverAddress overrides server_addr from the configuration.
	serverAddress string
	// interval is the watch polling interval.
	interval time.Duration

	// rootCmd represents the base command for driving a shared carousel.
	rootCmd = &cobra.Command{
		Use:   "carousel-remote",
		Short: "Drive a carousel-server from the command line.",
		Long: `Clicker for a shared presentation served by carousel-server.

Each subcommand sends one request and prints the resulting state as
"[slide/total] title". Slides are numbered from 1. Moving past either end
follows the server policy: wrap around, or stay put with clamp.
Server address and timeout come from the configuration file unless --server is given.`,
		SilenceUsage: true,
	}
)

// actionCommand builds a subcommand that runs a single remote action.
func actionCommand(use, short string, action remote.Action) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, &remote.Options{Action: action})
		},
	}
}

// gotoCommand jumps to a 1-based slide number.
func gotoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "goto <slide>",
		Short: "Jump to a slide (numbered from 1).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slide, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("slide number %q: %w", args[0], err)
			}

			return run(cmd, &remote.Options{Action: remote.ActionGoto, Slide: slide})
		},
	}
}

// watchCommand prints the state until interrupted.
func watchCommand() *cobra.Command {
	watch := &cobra.Command{
		Use:   "watch",
		Short: "Print the state whenever it changes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, &remote.Options{Action: remote.ActionWatch, PollInterval: interval})
		},
	}

	watch.Flags().DurationVarP(&interval, "interval", "i", remote.DefaultPollInterval, "polling interval")

	return watch
}

// run fills the shared flags and executes the action until it finishes or
// the process is interrupted.
func run(cmd *cobra.Command, options *remote.Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	options.ConfigPath = configPath
	options.ServerAddress = serverAddress
	options.Output = cmd.OutOrStdout()

	return remote.Run(ctx, options)
}

// Execute runs the carousel-remote CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVarP(&serverAddress, "server", "s", "", "carousel-server address (host:port)")

	rootCmd.AddCommand(
		actionCommand("show", "Print the current slide.", remote.ActionShow),
		actionCommand("next", "Move to the next slide.", remote.ActionNext),
		actionCommand("prev", "Move to the previous slide.", remote.ActionPrevious),
		actionCommand("list", "List every slide, marking the active one.", remote.ActionList),
		gotoCommand(),
		watchCommand(),
	)
}
