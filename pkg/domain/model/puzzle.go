package model

import (
	"encoding/json"

	"github.com/flophouse/rangeday/pkg/domain/types"
)

// Puzzle is one library record: a unique ID plus the full puzzle
// document as authored. Payload is kept verbatim so the library file
// round-trips losslessly and the API serves exactly what was authored.
type Puzzle struct {
	ID      types.PuzzleID
	Payload json.RawMessage
}
