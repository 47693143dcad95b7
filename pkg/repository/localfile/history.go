package localfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"github.com/flophouse/rangeday/pkg/domain/model"
	"github.com/flophouse/rangeday/pkg/utils/logging"
)

type historyRepository struct {
	path string
}

// Load reads the history file. A missing file means first run and
// yields an empty history. A file that no longer parses is advisory
// derived state, not source of truth, so it is logged and treated as
// empty rather than failing puzzle delivery.
func (r *historyRepository) Load(ctx context.Context) (model.History, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.History{}, nil
		}
		return nil, goerr.Wrap(err, "failed to read history file", goerr.V("path", r.path))
	}

	var history model.History
	if err := json.Unmarshal(data, &history); err != nil {
		logging.From(ctx).Warn("history file is malformed, treating as empty",
			"path", r.path,
			"error", err.Error(),
		)
		return model.History{}, nil
	}

	return history, nil
}

// Save writes the full sequence to a temporary file in the same
// directory and renames it over the target, so a crash mid-write never
// leaves a truncated file behind.
func (r *historyRepository) Save(ctx context.Context, history model.History) error {
	if history == nil {
		history = model.History{}
	}

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal history")
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return goerr.Wrap(err, "failed to create history directory", goerr.V("dir", dir))
	}

	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary history file", goerr.V("dir", dir))
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return goerr.Wrap(err, "failed to write history file", goerr.V("path", tmpName))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return goerr.Wrap(err, "failed to close history file", goerr.V("path", tmpName))
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		_ = os.Remove(tmpName)
		return goerr.Wrap(err, "failed to replace history file", goerr.V("path", r.path))
	}

	return nil
}
