package memory

import (
	"context"
	"sync"

	"github.com/flophouse/rangeday/pkg/domain/model"
)

type historyRepository struct {
	mu      sync.RWMutex
	entries model.History
}

func newHistoryRepository() *historyRepository {
	return &historyRepository{
		entries: model.History{},
	}
}

func (r *historyRepository) Load(ctx context.Context) (model.History, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.entries.Clone(), nil
}

func (r *historyRepository) Save(ctx context.Context, history model.History) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = history.Clone()
	return nil
}
