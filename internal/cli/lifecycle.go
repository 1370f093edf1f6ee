package cli

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Czerw0/JobFinder/internal/app"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Archive jobs that dropped out of the feed",
	Run: withContainer(func(c *app.Container, zl *zap.Logger) error {
		n, err := c.Lifecycle.ArchiveStale(context.Background())
		if err != nil {
			return err
		}
		zl.Info("archive finished", zap.Int64("archived", n))
		return nil
	}),
}

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete archived jobs past the retention window",
	Run: withContainer(func(c *app.Container, zl *zap.Logger) error {
		n, err := c.Lifecycle.PurgeArchived(context.Background())
		if err != nil {
			return err
		}
		zl.Info("purge finished", zap.Int64("purged", n))
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(purgeCmd)
}
