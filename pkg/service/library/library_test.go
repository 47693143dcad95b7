package library_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/flophouse/rangeday/pkg/domain/model"
	"github.com/flophouse/rangeday/pkg/domain/types"
	"github.com/flophouse/rangeday/pkg/service/library"
)

func writeLibrary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rangeLibrary.json")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o644)).Required()
	return path
}

func TestFileLoader(t *testing.T) {
	ctx := context.Background()

	t.Run("loads records and keeps payloads verbatim", func(t *testing.T) {
		path := writeLibrary(t, `[
			{"id": "p1", "board": "AsKdQh2c7s", "stacks": [200, 200]},
			{"id": "p2", "board": "TdTh9s3c3d"}
		]`)

		puzzles, err := library.NewFile(path).Load(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, puzzles).Length(2)
		gt.Value(t, puzzles[0].ID).Equal(types.PuzzleID("p1"))
		gt.Value(t, puzzles[1].ID).Equal(types.PuzzleID("p2"))

		// The payload is the authored record, untouched
		gt.String(t, string(puzzles[0].Payload)).Contains(`"stacks"`)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := library.NewFile(filepath.Join(t.TempDir(), "missing.json")).Load(ctx)
		gt.Value(t, err).NotNil()
	})

	t.Run("malformed JSON fails", func(t *testing.T) {
		path := writeLibrary(t, `{not json`)
		_, err := library.NewFile(path).Load(ctx)
		gt.Value(t, err).NotNil()
	})

	t.Run("record without ID fails", func(t *testing.T) {
		path := writeLibrary(t, `[{"board": "AsKdQh2c7s"}]`)
		_, err := library.NewFile(path).Load(ctx)
		gt.Value(t, err).NotNil()
	})

	t.Run("duplicate IDs fail", func(t *testing.T) {
		path := writeLibrary(t, `[{"id": "p1"}, {"id": "p1"}]`)
		_, err := library.NewFile(path).Load(ctx)
		gt.Value(t, err).NotNil()
	})

	t.Run("empty array is a valid empty library", func(t *testing.T) {
		path := writeLibrary(t, `[]`)
		puzzles, err := library.NewFile(path).Load(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, puzzles).Length(0)
	})
}

func TestCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Load before first Update fails", func(t *testing.T) {
		_, err := library.NewCache().Load(ctx)
		gt.Value(t, err).NotNil()
	})

	t.Run("Load returns the snapshot", func(t *testing.T) {
		cache := library.NewCache()
		cache.Update([]*model.Puzzle{{ID: "p1"}, {ID: "p2"}})

		puzzles, err := cache.Load(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, puzzles).Length(2)
	})

	t.Run("Update replaces the snapshot", func(t *testing.T) {
		cache := library.NewCache()
		cache.Update([]*model.Puzzle{{ID: "p1"}})
		cache.Update([]*model.Puzzle{{ID: "p2"}, {ID: "p3"}})

		puzzles, err := cache.Load(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, puzzles).Length(2)
		gt.Value(t, puzzles[0].ID).Equal(types.PuzzleID("p2"))
	})
}
