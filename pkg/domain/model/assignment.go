package model

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/flophouse/rangeday/pkg/domain/types"
)

// Assignment records that a puzzle was assigned to a calendar day.
// Entries are append-only; the only mutation of history is a full reset
// when the library is exhausted.
type Assignment struct {
	Day      types.Day      `json:"date" firestore:"date"`
	PuzzleID types.PuzzleID `json:"puzzle_id" firestore:"puzzle_id"`
}

// Validate checks if the assignment is well-formed
func (a *Assignment) Validate() error {
	if err := a.Day.Validate(); err != nil {
		return goerr.Wrap(err, "invalid assignment day")
	}
	if err := a.PuzzleID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid assignment puzzle ID")
	}
	return nil
}

// History is the ordered sequence of daily assignments
type History []*Assignment

// EntryFor returns the assignment recorded for the given day, or nil
func (h History) EntryFor(day types.Day) *Assignment {
	for _, entry := range h {
		if entry.Day == day {
			return entry
		}
	}
	return nil
}

// UsedIDs returns the set of puzzle IDs referenced by any entry
func (h History) UsedIDs() map[types.PuzzleID]struct{} {
	used := make(map[types.PuzzleID]struct{}, len(h))
	for _, entry := range h {
		used[entry.PuzzleID] = struct{}{}
	}
	return used
}

// Clone returns a copy of the history with copied entries
func (h History) Clone() History {
	cloned := make(History, len(h))
	for i, entry := range h {
		e := *entry
		cloned[i] = &e
	}
	return cloned
}
