package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stevenraymond8592-create/AI-Commitment/internal/config"
	"github.com/stevenraymond8592-create/AI-Commitment/internal/service/server"
	"github.com/stevenraymond8592-create/AI-Commitment/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// deckFile overrides the deck file from the configuration.
	deckFile string

	// rootCmd represents the base command for running the gRPC server.
	rootCmd = &cobra.Command{
		Use:   "carousel-server [listen-address]",
		Short: "Serve a shared carousel over gRPC.",
		Long: `Starts the gRPC carousel server that owns the presentation state.

Remotes move the shared carousel forward, back or to a given slide and read
its state. Only the port from server_addr is used for listening (e.g., :50061).
Listen address can be provided as argument to override config (e.g., :9090, 0.0.0.0:8080).
Navigation state lives in memory and starts at the first slide on every run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				DeckFile:      deckFile,
			}

			return server.Run(ctx, options)
		},
	}
)

// Execute runs the carousel-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&deckFile, "deck", "d", "", "path to a deck YAML file (built-in deck when empty)")
}
