package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/flophouse/rangeday/pkg/domain/types"
	"github.com/flophouse/rangeday/pkg/usecase"
	"github.com/flophouse/rangeday/pkg/utils/async"
	"github.com/flophouse/rangeday/pkg/utils/errutil"
	"github.com/flophouse/rangeday/pkg/utils/safe"
)

// dailyPuzzleHandler serves today's puzzle. The three scheduler failure
// modes stay distinguishable at the boundary: an unavailable library is
// 503, an inconsistent history is 500, and a persistence failure still
// serves the in-memory pick while the durability gap is reported in the
// background.
func dailyPuzzleHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		puzzle, err := uc.SelectToday(ctx)
		switch {
		case err == nil:
			writePuzzle(ctx, w, puzzle.Payload)

		case errors.Is(err, types.ErrPersistenceFailed) && puzzle != nil:
			// The selection is valid for this call but was not durably
			// recorded; a restart may re-select for the same day.
			async.Dispatch(ctx, func(ctx context.Context) error {
				errutil.Handle(ctx, err, "daily assignment was not durably recorded")
				return nil
			})
			writePuzzle(ctx, w, puzzle.Payload)

		case errors.Is(err, types.ErrLibraryUnavailable):
			errutil.HandleHTTP(ctx, w, err, http.StatusServiceUnavailable)

		default:
			errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		}
	}
}

func writePuzzle(ctx context.Context, w http.ResponseWriter, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	safe.Write(ctx, w, payload)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	safe.Write(r.Context(), w, []byte(`{"status":"ok"}`))
}
