package cli

import (
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Czerw0/JobFinder/internal/app"
	"github.com/Czerw0/JobFinder/internal/config"
	"github.com/Czerw0/JobFinder/internal/logger"
)

var (
	flagJSON  bool
	flagDebug bool

	rootCmd = &cobra.Command{
		Use:   "jobctl",
		Short: "jobctl drives the job board pipeline: feed ingestion, CV matching and corpus lifecycle",
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "d", false, "verbose/debug output")
}

// withContainer builds the shared dependency container for a
// subcommand and tears it down when the command returns.
func withContainer(fn func(c *app.Container, zl *zap.Logger) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, _ []string) {
		zl, err := logger.New(flagJSON, flagDebug)
		if err != nil {
			log.Fatalf("creating a logger: %s", err)
		}
		defer func() { _ = zl.Sync() }()

		cfg, err := config.Load()
		if err != nil {
			zl.Fatal("loading config", zap.Error(err))
		}

		container, err := app.NewContainer(cfg, zl)
		if err != nil {
			zl.Fatal("bootstrapping", zap.Error(err))
		}
		defer func() { _ = container.Close() }()

		if err := fn(container, zl); err != nil {
			zl.Fatal("command failed", zap.Error(err))
		}
	}
}
