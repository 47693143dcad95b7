package sqlite

import (
	"context"
	"database/sql"

	"github.com/m-mizutani/goerr/v2"

	"github.com/flophouse/rangeday/pkg/domain/model"
	"github.com/flophouse/rangeday/pkg/domain/types"
)

type historyRepository struct {
	db *sql.DB
}

func (r *historyRepository) Load(ctx context.Context) (model.History, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT day, puzzle_id FROM assignments ORDER BY seq")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query assignments")
	}
	defer rows.Close()

	history := model.History{}
	for rows.Next() {
		var day, puzzleID string
		if err := rows.Scan(&day, &puzzleID); err != nil {
			return nil, goerr.Wrap(err, "failed to scan assignment row")
		}
		history = append(history, &model.Assignment{
			Day:      types.Day(day),
			PuzzleID: types.PuzzleID(puzzleID),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate assignment rows")
	}

	return history, nil
}

// Save replaces the stored sequence inside a single transaction, so a
// reader never observes a partially written history.
func (r *historyRepository) Save(ctx context.Context, history model.History) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM assignments"); err != nil {
		return goerr.Wrap(err, "failed to clear assignments")
	}

	for _, entry := range history {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO assignments (day, puzzle_id) VALUES (?, ?)",
			entry.Day.String(), entry.PuzzleID.String(),
		); err != nil {
			return goerr.Wrap(err, "failed to insert assignment",
				goerr.V("day", entry.Day),
				goerr.V("puzzle_id", entry.PuzzleID),
			)
		}
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit assignments")
	}

	return nil
}
