package cli

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Czerw0/JobFinder/internal/app"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Pull the remote feed once and upsert it into the corpus",
	Run: withContainer(func(c *app.Container, zl *zap.Logger) error {
		sum, err := c.Scraper.Scrape(context.Background())
		if err != nil {
			return err
		}

		c.JobList.InvalidateCache(context.Background())

		zl.Info("scrape finished",
			zap.Int("fetched", sum.Fetched),
			zap.Int("created", sum.Created),
			zap.Int("updated", sum.Updated),
			zap.Int("skipped", sum.Skipped),
		)
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}
