package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Czerw0/JobFinder/internal/app"
	"github.com/Czerw0/JobFinder/internal/usecase"
)

var matchTopN int

var matchCmd = &cobra.Command{
	Use:   "match <cv-id>",
	Short: "Rank the active corpus against a CV and persist the top scores",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cvID, err := uuid.Parse(args[0])
		if err != nil {
			cmd.PrintErrf("invalid cv id %q: %v\n", args[0], err)
			return
		}

		withContainer(func(c *app.Container, zl *zap.Logger) error {
			ranked, err := c.Matcher.RankJobsForCV(context.Background(), cvID, matchTopN)
			if err != nil {
				return err
			}

			for i, r := range ranked {
				fmt.Printf("%2d. %.3f  %s @ %s\n", i+1, r.Score, r.Job.Title, r.Job.Company)
			}
			zl.Info("matching finished", zap.Int("ranked", len(ranked)))
			return nil
		})(cmd, args)
	},
}

func init() {
	matchCmd.Flags().IntVarP(&matchTopN, "top-n", "n", usecase.DefaultTopN, "number of matches to keep")
	rootCmd.AddCommand(matchCmd)
}
