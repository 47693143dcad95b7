package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/flophouse/rangeday/pkg/domain/model"
	"github.com/flophouse/rangeday/pkg/service/library"
	"github.com/flophouse/rangeday/pkg/service/worker"
)

// flakySource fails after serving its first snapshot
type flakySource struct {
	puzzles []*model.Puzzle
	calls   int
}

func (s *flakySource) Load(ctx context.Context) ([]*model.Puzzle, error) {
	s.calls++
	if s.calls > 1 {
		return nil, errors.New("source gone")
	}
	return s.puzzles, nil
}

func TestLibraryRefreshWorker(t *testing.T) {
	t.Run("initial refresh fills the cache before Start returns", func(t *testing.T) {
		source := &flakySource{puzzles: []*model.Puzzle{{ID: "p1"}, {ID: "p2"}}}
		cache := library.NewCache()

		w := worker.NewLibraryRefreshWorker(source, cache, time.Hour)
		gt.NoError(t, w.Start(context.Background())).Required()
		defer w.Stop()

		puzzles, err := cache.Load(context.Background())
		gt.NoError(t, err).Required()
		gt.Array(t, puzzles).Length(2)
	})

	t.Run("failed refresh keeps the previous snapshot", func(t *testing.T) {
		source := &flakySource{puzzles: []*model.Puzzle{{ID: "p1"}}}
		cache := library.NewCache()

		w := worker.NewLibraryRefreshWorker(source, cache, 10*time.Millisecond)
		gt.NoError(t, w.Start(context.Background())).Required()

		// Give the loop time to hit the now-failing source
		time.Sleep(50 * time.Millisecond)
		w.Stop()

		gt.Bool(t, source.calls > 1).True()

		puzzles, err := cache.Load(context.Background())
		gt.NoError(t, err).Required()
		gt.Array(t, puzzles).Length(1)
	})
}
