package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/flophouse/rangeday/pkg/cli/config"
	"github.com/flophouse/rangeday/pkg/usecase"
	"github.com/flophouse/rangeday/pkg/utils/logging"
)

func cmdValidate() *cli.Command {
	var checkHistory bool
	var libCfg config.Library
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "check-history",
			Usage:       "Cross-check the history store against the library",
			Sources:     cli.EnvVars("RANGEDAY_VALIDATE_CHECK_HISTORY"),
			Destination: &checkHistory,
		},
	}
	flags = append(flags, libCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a puzzle library and optionally check history consistency",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			// Step 1: the loader enforces the library invariants
			// (decodable records, unique non-empty IDs)
			loader, loaderCloser, err := libCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize library loader")
			}
			defer func() {
				if err := loaderCloser(); err != nil {
					logger.Error("failed to close library loader", "error", err.Error())
				}
			}()

			puzzles, err := loader.Load(ctx)
			if err != nil {
				color.Red("✗ Library validation failed")
				return goerr.Wrap(err, "library validation failed")
			}

			color.Green("✓ Library is valid (%d puzzles)", len(puzzles))

			// Step 2: optional history cross-check
			if !checkHistory {
				logger.Info("History check not requested, done")
				return nil
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logger.Error("failed to close repository", "error", err.Error())
				}
			}()

			uc := usecase.New(repo, loader)
			report, err := uc.CheckConsistency(ctx)
			if err != nil {
				return goerr.Wrap(err, "history consistency check failed")
			}

			if report.HasIssues() {
				for _, issue := range report.Issues {
					logger.Warn("history consistency issue found",
						"day", issue.Day,
						"puzzle_id", issue.PuzzleID,
						"message", issue.Message,
					)
				}
				color.Red("✗ History check found %d issue(s) across %d entries", len(report.Issues), report.Entries)
				return fmt.Errorf("history consistency check found %d issue(s)", len(report.Issues))
			}

			color.Green("✓ History is consistent (%d entries)", report.Entries)
			return nil
		},
	}
}
