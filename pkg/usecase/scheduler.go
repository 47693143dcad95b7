package usecase

import (
	"context"
	"math/rand/v2"

	"github.com/m-mizutani/goerr/v2"

	"github.com/flophouse/rangeday/pkg/domain/model"
	"github.com/flophouse/rangeday/pkg/domain/types"
	"github.com/flophouse/rangeday/pkg/utils/logging"
)

// SelectToday selects (or returns the already recorded) puzzle for the
// current calendar day in the configured clock's location.
func (uc *UseCases) SelectToday(ctx context.Context) (*model.Puzzle, error) {
	return uc.SelectForDate(ctx, types.NewDay(uc.clock()))
}

// SelectForDate returns the puzzle assigned to the given day. If the
// day has no assignment yet, one puzzle is drawn uniformly at random
// from the library entries not referenced by any history entry, and
// the assignment is persisted before returning. Repeated calls for the
// same day return the same puzzle, including across process restarts.
//
// When the whole library has been used, the history is reset to empty
// and the selection is retried once against the full pool.
//
// On a save failure the freshly selected puzzle is returned together
// with a types.ErrPersistenceFailed error: the caller may still serve
// it, but the assignment is not durable and a restart can re-select
// for the same day.
func (uc *UseCases) SelectForDate(ctx context.Context, day types.Day) (*model.Puzzle, error) {
	if err := day.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid selection day")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	puzzles, err := uc.library.Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(types.ErrLibraryUnavailable, "failed to load puzzle library", goerr.V("cause", err.Error()))
	}
	if len(puzzles) == 0 {
		return nil, goerr.Wrap(types.ErrLibraryUnavailable, "puzzle library is empty")
	}

	history, err := uc.repo.History().Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(types.ErrPersistenceFailed, "failed to load assignment history", goerr.V("cause", err.Error()))
	}

	// A day that already has an assignment keeps it forever. If the
	// recorded puzzle is gone from the library, the library was changed
	// underneath the history; re-selecting here would silently swap a
	// puzzle that clients may have already seen, so fail instead.
	if entry := history.EntryFor(day); entry != nil {
		for _, p := range puzzles {
			if p.ID == entry.PuzzleID {
				return p, nil
			}
		}
		return nil, goerr.Wrap(types.ErrInconsistentHistory, "recorded puzzle is missing from the library",
			goerr.V("day", day),
			goerr.V("puzzle_id", entry.PuzzleID),
		)
	}

	// At most one retry: after a reset the pool is the full library,
	// which is non-empty by the check above.
	for attempt := 0; attempt < 2; attempt++ {
		used := history.UsedIDs()
		pool := make([]*model.Puzzle, 0, len(puzzles))
		for _, p := range puzzles {
			if _, ok := used[p.ID]; !ok {
				pool = append(pool, p)
			}
		}

		if len(pool) == 0 {
			logging.From(ctx).Info("puzzle library exhausted, resetting assignment history",
				"library_size", len(puzzles),
				"history_size", len(history),
			)
			history = model.History{}
			if err := uc.repo.History().Save(ctx, history); err != nil {
				return nil, goerr.Wrap(types.ErrPersistenceFailed, "failed to reset exhausted history", goerr.V("cause", err.Error()))
			}
			continue
		}

		selected := pool[rand.IntN(len(pool))]
		history = append(history, &model.Assignment{Day: day, PuzzleID: selected.ID})
		if err := uc.repo.History().Save(ctx, history); err != nil {
			return selected, goerr.Wrap(types.ErrPersistenceFailed, "failed to record assignment",
				goerr.V("day", day),
				goerr.V("puzzle_id", selected.ID),
			)
		}

		logging.From(ctx).Info("assigned daily puzzle",
			"day", day,
			"puzzle_id", selected.ID,
			"pool_size", len(pool),
		)
		return selected, nil
	}

	// Unreachable while the library is non-empty.
	return nil, goerr.New("selection pool still empty after history reset", goerr.V("day", day))
}
