package library

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/flophouse/rangeday/pkg/domain/interfaces"
	"github.com/flophouse/rangeday/pkg/domain/model"
)

// Cache is an in-memory snapshot of the library, refreshed out of band
// by the refresh worker. Load never touches the backing source, so a
// broken redeploy keeps serving the last good snapshot.
type Cache struct {
	mu      sync.RWMutex
	puzzles []*model.Puzzle
	loaded  bool
}

var _ interfaces.LibraryLoader = &Cache{}

func NewCache() *Cache {
	return &Cache{}
}

// Update replaces the snapshot
func (c *Cache) Update(puzzles []*model.Puzzle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.puzzles = puzzles
	c.loaded = true
}

func (c *Cache) Load(ctx context.Context) ([]*model.Puzzle, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.loaded {
		return nil, goerr.New("library snapshot not loaded yet")
	}

	puzzles := make([]*model.Puzzle, len(c.puzzles))
	copy(puzzles, c.puzzles)
	return puzzles, nil
}
