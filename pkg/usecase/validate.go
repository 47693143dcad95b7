package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/flophouse/rangeday/pkg/domain/types"
)

// ConsistencyIssue represents a single problem found when cross-checking
// the assignment history against the puzzle library
type ConsistencyIssue struct {
	Day      types.Day
	PuzzleID types.PuzzleID
	Message  string
}

// ConsistencyReport holds the results of a history consistency check
type ConsistencyReport struct {
	Entries int
	Issues  []ConsistencyIssue
}

// HasIssues returns true if any consistency issues were found
func (r *ConsistencyReport) HasIssues() bool {
	return len(r.Issues) > 0
}

// CheckConsistency cross-checks the persisted history against the
// current library: every recorded puzzle ID must still exist, and no
// day may appear twice. It never modifies any data; issues of the
// unknown-ID class are exactly what SelectForDate reports as
// types.ErrInconsistentHistory at request time.
func (uc *UseCases) CheckConsistency(ctx context.Context) (*ConsistencyReport, error) {
	puzzles, err := uc.library.Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load puzzle library")
	}

	known := make(map[types.PuzzleID]struct{}, len(puzzles))
	for _, p := range puzzles {
		known[p.ID] = struct{}{}
	}

	history, err := uc.repo.History().Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load assignment history")
	}

	report := &ConsistencyReport{Entries: len(history)}
	seen := make(map[types.Day]struct{}, len(history))

	for _, entry := range history {
		if _, ok := known[entry.PuzzleID]; !ok {
			report.Issues = append(report.Issues, ConsistencyIssue{
				Day:      entry.Day,
				PuzzleID: entry.PuzzleID,
				Message:  "history references a puzzle ID not present in the library",
			})
		}
		if _, ok := seen[entry.Day]; ok {
			report.Issues = append(report.Issues, ConsistencyIssue{
				Day:      entry.Day,
				PuzzleID: entry.PuzzleID,
				Message:  "duplicate history entry for the same day",
			})
		}
		seen[entry.Day] = struct{}{}
	}

	return report, nil
}
