package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/stevenraymond8592-create/AI-Commitment/internal/config"
	"github.com/stevenraymond8592-create/AI-Commitment/internal/service/present"
	"github.com/stevenraymond8592-create/AI-Commitment/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// deckFile overrides the deck file from the configuration.
	deckFile string
	// policy overrides the boundary policy.
	policy string
	// settle overrides the settle window.
	settle time.Duration
	// logFile receives logs while the presenter is on screen.
	logFile string
	// force allows export-deck to overwrite a file.
	force bool

	// rootCmd represents the base command for presenting the deck.
	rootCmd = &cobra.Command{
		Use:   "carousel-present",
		Short: "Present the guiding commitments in the terminal.",
		Long: `Shows the commitment slides full screen, one at a time.

Use ←/→ (or h/l, p/n, space) to move, 1-9 to jump, home/end for the first and
last slide, ? for all keys and q to quit. Moving past either end wraps around
unless the policy is clamp. The settings file is optional; defaults are used
when it does not exist.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &present.Options{
				ConfigPath:     configPath,
				DeckFile:       deckFile,
				Policy:         policy,
				SettleDuration: settle,
				LogFile:        logFile,
			}

			return present.Run(ctx, options)
		},
	}

	// exportCmd writes a deck YAML to start a custom deck from.
	exportCmd = &cobra.Command{
		Use:   "export-deck <path>",
		Short: "Write the deck as YAML for editing.",
		Long: `Writes the built-in deck (or the one given with --deck) to a YAML file.
Edit the file and pass it back with --deck to present your own commitments.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options := &present.ExportOptions{
				Path:     args[0],
				DeckFile: deckFile,
				Force:    force,
			}

			return present.ExportDeck(cmd.Context(), options)
		},
	}
)

// Execute runs the carousel-present CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)
	rootCmd.AddCommand(exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&deckFile, "deck", "d", "", "path to a deck YAML file (built-in deck when empty)")
	rootCmd.Flags().StringVarP(&policy, "policy", "p", "", "boundary policy: wrap or clamp")
	rootCmd.Flags().DurationVar(&settle, "settle", 0, "transition settle window (default 800ms)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")

	exportCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
}
