package usecase

import (
	"sync"
	"time"

	"github.com/flophouse/rangeday/pkg/domain/interfaces"
)

// UseCases holds the business logic of the daily puzzle service. The
// mutex serializes the read-modify-write sequence over the assignment
// history: the repository is owned by a single process, so an
// in-process lock is sufficient to keep "at most one entry per day".
type UseCases struct {
	mu      sync.Mutex
	repo    interfaces.Repository
	library interfaces.LibraryLoader
	clock   func() time.Time
}

type Option func(*UseCases)

// WithClock overrides the time source used to determine "today"
func WithClock(clock func() time.Time) Option {
	return func(uc *UseCases) {
		uc.clock = clock
	}
}

func New(repo interfaces.Repository, library interfaces.LibraryLoader, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:    repo,
		library: library,
		clock:   time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
