package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// PuzzleID is the opaque unique identifier of a library puzzle
type PuzzleID string

// NewPuzzleID generates a new UUID v4 PuzzleID. Only the authoring
// pipeline mints new IDs; the scheduler treats them as opaque.
func NewPuzzleID() PuzzleID {
	return PuzzleID(uuid.New().String())
}

// Validate checks if the puzzle ID is usable
func (id PuzzleID) Validate() error {
	if id == "" {
		return goerr.New("puzzle ID is empty")
	}
	return nil
}

// String returns the string representation of the puzzle ID
func (id PuzzleID) String() string {
	return string(id)
}
