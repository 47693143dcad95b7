package library

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"

	"github.com/flophouse/rangeday/pkg/domain/model"
	"github.com/flophouse/rangeday/pkg/domain/types"
)

// decode parses a library document: a JSON array of puzzle objects,
// each carrying a unique non-empty "id". The full object is kept as
// the payload so the API serves exactly what was authored.
func decode(data []byte) ([]*model.Puzzle, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, goerr.Wrap(err, "library is not a JSON array")
	}

	puzzles := make([]*model.Puzzle, 0, len(records))
	seen := make(map[types.PuzzleID]struct{}, len(records))

	for i, raw := range records {
		var header struct {
			ID types.PuzzleID `json:"id"`
		}
		if err := json.Unmarshal(raw, &header); err != nil {
			return nil, goerr.Wrap(err, "malformed library record", goerr.V("index", i))
		}
		if err := header.ID.Validate(); err != nil {
			return nil, goerr.Wrap(err, "library record has no usable ID", goerr.V("index", i))
		}
		if _, ok := seen[header.ID]; ok {
			return nil, goerr.New("duplicate puzzle ID in library", goerr.V("id", header.ID), goerr.V("index", i))
		}
		seen[header.ID] = struct{}{}

		puzzles = append(puzzles, &model.Puzzle{
			ID:      header.ID,
			Payload: raw,
		})
	}

	return puzzles, nil
}
