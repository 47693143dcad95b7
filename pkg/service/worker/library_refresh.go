package worker

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/flophouse/rangeday/pkg/domain/interfaces"
	"github.com/flophouse/rangeday/pkg/service/library"
	"github.com/flophouse/rangeday/pkg/utils/logging"
)

// LibraryRefreshWorker periodically re-reads the library source into an
// in-memory snapshot so a redeployed library file or object is picked
// up without restarting the server.
//
// Architecture assumptions:
// - Single server instance (the snapshot is process-local)
// - A failed refresh keeps the previous snapshot (graceful degradation)
type LibraryRefreshWorker struct {
	source   interfaces.LibraryLoader
	cache    *library.Cache
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewLibraryRefreshWorker creates a worker refreshing cache from source
func NewLibraryRefreshWorker(source interfaces.LibraryLoader, cache *library.Cache, interval time.Duration) *LibraryRefreshWorker {
	return &LibraryRefreshWorker{
		source:   source,
		cache:    cache,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start performs an initial synchronous refresh and then begins the
// periodic refresh loop in a background goroutine. A failed initial
// refresh is logged but not fatal: requests fail with "library
// unavailable" until a later refresh succeeds.
func (w *LibraryRefreshWorker) Start(ctx context.Context) error {
	logging.Default().Info("library refresh worker starting",
		"interval", w.interval.String())

	if err := w.refresh(ctx); err != nil {
		logging.Default().Error("initial library refresh failed (will retry next interval)",
			"error", err.Error())
	}

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *LibraryRefreshWorker) Stop() {
	logging.Default().Info("library refresh worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("library refresh worker stopped")
}

func (w *LibraryRefreshWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.refresh(ctx); err != nil {
				// Keep serving the previous snapshot
				logging.Default().Error("library refresh failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			return

		case <-ctx.Done():
			logging.Default().Info("library refresh worker context cancelled")
			return
		}
	}
}

// refresh performs a single refresh cycle
func (w *LibraryRefreshWorker) refresh(ctx context.Context) error {
	startTime := time.Now()

	puzzles, err := w.source.Load(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to load library from source")
	}

	w.cache.Update(puzzles)

	logging.Default().Info("library refresh completed",
		"count", len(puzzles),
		"duration", time.Since(startTime).String())

	return nil
}
