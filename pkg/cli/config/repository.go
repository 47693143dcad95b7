package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/flophouse/rangeday/pkg/domain/interfaces"
	"github.com/flophouse/rangeday/pkg/repository/firestore"
	"github.com/flophouse/rangeday/pkg/repository/localfile"
	"github.com/flophouse/rangeday/pkg/repository/memory"
	"github.com/flophouse/rangeday/pkg/repository/sqlite"
	"github.com/flophouse/rangeday/pkg/utils/logging"
)

// Repository holds CLI flags for the history store backend
type Repository struct {
	backend    string
	filePath   string
	dbPath     string
	projectID  string
	databaseID string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "history-backend",
			Category:    "history",
			Usage:       "History store backend (file, sqlite, firestore or memory)",
			Value:       "file",
			Sources:     cli.EnvVars("RANGEDAY_HISTORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "history-file",
			Category:    "history",
			Usage:       "History JSON file path (file backend)",
			Value:       "data/gameHistory.json",
			Sources:     cli.EnvVars("RANGEDAY_HISTORY_FILE"),
			Destination: &r.filePath,
		},
		&cli.StringFlag{
			Name:        "history-db",
			Category:    "history",
			Usage:       "History SQLite database path (sqlite backend)",
			Value:       "data/history.db",
			Sources:     cli.EnvVars("RANGEDAY_HISTORY_DB"),
			Destination: &r.dbPath,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Category:    "history",
			Usage:       "Firestore Project ID (required when using firestore backend)",
			Sources:     cli.EnvVars("RANGEDAY_FIRESTORE_PROJECT_ID"),
			Destination: &r.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Category:    "history",
			Usage:       "Firestore Database ID",
			Sources:     cli.EnvVars("RANGEDAY_FIRESTORE_DATABASE_ID"),
			Destination: &r.databaseID,
		},
	}
}

// Backend returns the configured backend type
func (r *Repository) Backend() string {
	return r.backend
}

// Configure initializes and returns a repository based on the configured backend.
// The caller is responsible for calling Close() on the returned repository.
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch r.backend {
	case "file":
		logging.Default().Info("Using file history store", "path", r.filePath)
		return localfile.New(r.filePath), nil

	case "sqlite":
		repo, err := sqlite.New(r.dbPath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize sqlite repository")
		}
		logging.Default().Info("Using SQLite history store", "path", r.dbPath)
		return repo, nil

	case "firestore":
		if r.projectID == "" {
			return nil, goerr.New("firestore-project-id is required when using firestore backend")
		}
		repo, err := firestore.New(ctx, r.projectID, r.databaseID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize firestore repository")
		}
		logging.Default().Info("Using Firestore history store",
			"project_id", r.projectID,
			"database_id", r.databaseID,
		)
		return repo, nil

	case "memory":
		logging.Default().Info("Using in-memory history store (development mode)")
		return memory.New(), nil

	default:
		return nil, goerr.New("invalid history backend", goerr.V("backend", r.backend))
	}
}
