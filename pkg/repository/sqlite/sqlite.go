package sqlite

import (
	"database/sql"
	_ "embed"

	"github.com/m-mizutani/goerr/v2"
	_ "github.com/mattn/go-sqlite3"

	"github.com/flophouse/rangeday/pkg/domain/interfaces"
)

//go:embed schema.sql
var schemaSQL string

// SQLite persists the assignment history in a local SQLite database.
// The connection pool is capped at a single connection: SQLite allows
// one writer at a time, and the scheduler is the only writer anyway.
type SQLite struct {
	db      *sql.DB
	history *historyRepository
}

var _ interfaces.Repository = &SQLite{}

// New creates or opens the database at path and applies the schema.
// Safe to call on an existing database.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database", goerr.V("path", path))
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to connect to sqlite database", goerr.V("path", path))
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, goerr.Wrap(err, "failed to apply pragma", goerr.V("pragma", pragma))
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to apply schema", goerr.V("path", path))
	}

	return &SQLite{
		db:      db,
		history: &historyRepository{db: db},
	}, nil
}

func (s *SQLite) History() interfaces.HistoryRepository {
	return s.history
}

func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
