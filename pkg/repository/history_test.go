package repository_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/flophouse/rangeday/pkg/domain/interfaces"
	"github.com/flophouse/rangeday/pkg/domain/model"
	"github.com/flophouse/rangeday/pkg/domain/types"
	"github.com/flophouse/rangeday/pkg/repository/firestore"
	"github.com/flophouse/rangeday/pkg/repository/localfile"
	"github.com/flophouse/rangeday/pkg/repository/memory"
	"github.com/flophouse/rangeday/pkg/repository/sqlite"
)

func runHistoryRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Load returns empty history on first run", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		history, err := repo.History().Load(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, history).Length(0)
	})

	t.Run("Save and Load round-trip preserves order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		saved := model.History{
			{Day: "2024-01-01", PuzzleID: "puzzle-003"},
			{Day: "2024-01-02", PuzzleID: "puzzle-001"},
			{Day: "2024-01-03", PuzzleID: "puzzle-002"},
		}
		gt.NoError(t, repo.History().Save(ctx, saved)).Required()

		loaded, err := repo.History().Load(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, loaded).Length(3)
		for i := range saved {
			gt.Value(t, loaded[i].Day).Equal(saved[i].Day)
			gt.Value(t, loaded[i].PuzzleID).Equal(saved[i].PuzzleID)
		}
	})

	t.Run("Save replaces the full sequence", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.History().Save(ctx, model.History{
			{Day: "2024-01-01", PuzzleID: "puzzle-001"},
			{Day: "2024-01-02", PuzzleID: "puzzle-002"},
		})).Required()

		gt.NoError(t, repo.History().Save(ctx, model.History{
			{Day: "2024-02-01", PuzzleID: "puzzle-009"},
		})).Required()

		loaded, err := repo.History().Load(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, loaded).Length(1)
		gt.Value(t, loaded[0].Day).Equal(types.Day("2024-02-01"))
	})

	t.Run("Save with empty history clears the store", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.History().Save(ctx, model.History{
			{Day: "2024-01-01", PuzzleID: "puzzle-001"},
		})).Required()

		gt.NoError(t, repo.History().Save(ctx, model.History{})).Required()

		loaded, err := repo.History().Load(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, loaded).Length(0)
	})

	t.Run("Saved history is not aliased by later mutation", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		saved := model.History{
			{Day: "2024-01-01", PuzzleID: "puzzle-001"},
		}
		gt.NoError(t, repo.History().Save(ctx, saved)).Required()

		saved[0].PuzzleID = "mutated"

		loaded, err := repo.History().Load(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, loaded[0].PuzzleID).Equal(types.PuzzleID("puzzle-001"))
	})
}

func TestMemoryHistoryRepository(t *testing.T) {
	runHistoryRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestLocalFileHistoryRepository(t *testing.T) {
	runHistoryRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return localfile.New(filepath.Join(t.TempDir(), "gameHistory.json"))
	})
}

func TestSQLiteHistoryRepository(t *testing.T) {
	runHistoryRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		repo, err := sqlite.New(filepath.Join(t.TempDir(), "history.db"))
		gt.NoError(t, err).Required()
		t.Cleanup(func() {
			if err := repo.Close(); err != nil {
				t.Errorf("failed to close sqlite repository: %v", err)
			}
		})
		return repo
	})
}

func TestFirestoreHistoryRepository(t *testing.T) {
	runHistoryRepositoryTest(t, newFirestoreRepository)
}

func newFirestoreRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	prefix := fmt.Sprintf("test_%d_", time.Now().UnixNano())
	repo, err := firestore.New(ctx, projectID, databaseID, firestore.WithCollectionPrefix(prefix))
	if err != nil {
		t.Fatalf("failed to create firestore repository: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("failed to close firestore repository: %v", err)
		}
	})
	return repo
}

func TestLocalFileMalformedHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gameHistory.json")
	gt.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644)).Required()

	repo := localfile.New(path)

	// Malformed storage is advisory derived state: logged and treated
	// as empty, not fatal
	history, err := repo.History().Load(context.Background())
	gt.NoError(t, err).Required()
	gt.Array(t, history).Length(0)
}
