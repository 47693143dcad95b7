package interfaces

import (
	"context"

	"github.com/flophouse/rangeday/pkg/domain/model"
)

// HistoryRepository persists the daily assignment history. The
// scheduler is the sole writer; Save replaces the full sequence and
// must be atomic from the caller's point of view (a later Load never
// observes a partially written sequence).
type HistoryRepository interface {
	// Load returns the recorded history. First run (no stored history)
	// yields an empty sequence. Malformed storage is advisory state and
	// is also treated as empty; genuine I/O failures return an error.
	Load(ctx context.Context) (model.History, error)

	// Save persists the full sequence, replacing any previous state.
	Save(ctx context.Context, history model.History) error
}

// Repository defines the interface for data persistence
type Repository interface {
	History() HistoryRepository
	Close() error
}
