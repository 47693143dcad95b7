package interfaces

import (
	"context"

	"github.com/flophouse/rangeday/pkg/domain/model"
)

// LibraryLoader provides read-only access to the puzzle library. The
// library is owned by the offline authoring pipeline; the service never
// writes it. Missing or malformed backing data returns an error, which
// callers treat as "puzzle delivery unavailable".
type LibraryLoader interface {
	Load(ctx context.Context) ([]*model.Puzzle, error)
}
