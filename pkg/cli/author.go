package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/flophouse/rangeday/pkg/cli/config"
	"github.com/flophouse/rangeday/pkg/domain/types"
	"github.com/flophouse/rangeday/pkg/service/dealer"
	"github.com/flophouse/rangeday/pkg/utils/logging"
)

func cmdAuthor() *cli.Command {
	var output string
	var authorCfg config.Author

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Library JSON file to write",
			Value:       "data/rangeLibrary.json",
			Sources:     cli.EnvVars("RANGEDAY_AUTHOR_OUTPUT"),
			Destination: &output,
		},
	}
	flags = append(flags, authorCfg.Flags()...)

	return &cli.Command{
		Name:    "author",
		Aliases: []string{"a"},
		Usage:   "Author a puzzle library by simulating hold'em deals",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			gameCfg, err := authorCfg.GameConfig()
			if err != nil {
				return goerr.Wrap(err, "failed to load game config")
			}

			d, err := dealer.New(gameCfg)
			if err != nil {
				return goerr.Wrap(err, "failed to create dealer")
			}

			var solver *dealer.Solver
			if path := authorCfg.SolverPath(); path != "" {
				solver, err = dealer.NewSolver(path)
				if err != nil {
					return goerr.Wrap(err, "failed to initialize solver")
				}
				logging.Default().Info("GTO annotation enabled", "solver", path)
			} else {
				logging.Default().Info("No solver configured, authoring without GTO annotation")
			}

			count := authorCfg.Count()
			if count <= 0 {
				return goerr.New("count must be positive", goerr.V("count", count))
			}

			candidates := make([]*dealer.Candidate, count)

			// Dealing is cheap but solver runs are not; cap the
			// concurrency at the CPU count either way.
			eg, egCtx := errgroup.WithContext(ctx)
			eg.SetLimit(runtime.NumCPU())
			for i := 0; i < count; i++ {
				eg.Go(func() error {
					deal, err := d.Deal()
					if err != nil {
						return goerr.Wrap(err, "failed to simulate deal", goerr.V("index", i))
					}

					candidate := &dealer.Candidate{
						ID:        types.NewPuzzleID().String(),
						Stacks:    deal.Stacks,
						Blinds:    deal.Blinds,
						Button:    deal.Button,
						HoleCards: deal.HoleCards,
						Board:     deal.Board,
					}

					if solver != nil {
						gto, err := solver.Annotate(egCtx, deal)
						if err != nil {
							return goerr.Wrap(err, "failed to annotate deal", goerr.V("index", i))
						}
						candidate.GTO = gto
					}

					candidates[i] = candidate
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return goerr.Wrap(err, "authoring pipeline failed")
			}

			data, err := json.MarshalIndent(candidates, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to marshal library")
			}

			if dir := filepath.Dir(output); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return goerr.Wrap(err, "failed to create output directory", goerr.V("dir", dir))
				}
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return goerr.Wrap(err, "failed to write library file", goerr.V("path", output))
			}

			color.Green("✓ Authored %d puzzles to %s", count, output)
			if solver == nil {
				color.Yellow("  (no GTO annotation; pass --solver to enable)")
			}
			return nil
		},
	}
}
