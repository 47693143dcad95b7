package config

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/flophouse/rangeday/pkg/domain/interfaces"
	"github.com/flophouse/rangeday/pkg/service/library"
	"github.com/flophouse/rangeday/pkg/utils/logging"
)

// Library holds CLI flags for the puzzle library source
type Library struct {
	source          string
	refreshInterval time.Duration
}

// Flags returns CLI flags for library configuration
func (l *Library) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "library",
			Category:    "library",
			Usage:       "Puzzle library source: a JSON file path or a gs://bucket/object URL",
			Value:       "data/rangeLibrary.json",
			Sources:     cli.EnvVars("RANGEDAY_LIBRARY"),
			Destination: &l.source,
		},
		&cli.DurationFlag{
			Name:        "library-refresh",
			Category:    "library",
			Usage:       "Interval for re-reading the library source (0 disables the refresh worker)",
			Value:       0,
			Sources:     cli.EnvVars("RANGEDAY_LIBRARY_REFRESH"),
			Destination: &l.refreshInterval,
		},
	}
}

// RefreshInterval returns the configured refresh interval
func (l *Library) RefreshInterval() time.Duration {
	return l.refreshInterval
}

// Configure builds the library loader for the configured source. The
// returned closer releases any client the loader holds; it is nil-safe
// to call exactly once after the loader is no longer needed.
func (l *Library) Configure(ctx context.Context) (interfaces.LibraryLoader, func() error, error) {
	if bucket, object, ok := splitGCSURL(l.source); ok {
		loader, err := library.NewGCS(ctx, bucket, object)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to initialize GCS library loader")
		}
		logging.Default().Info("Using GCS library source", "bucket", bucket, "object", object)
		return loader, loader.Close, nil
	}

	logging.Default().Info("Using file library source", "path", l.source)
	return library.NewFile(l.source), func() error { return nil }, nil
}

// splitGCSURL splits a gs://bucket/path/to/object URL
func splitGCSURL(source string) (bucket, object string, ok bool) {
	rest, found := strings.CutPrefix(source, "gs://")
	if !found {
		return "", "", false
	}
	bucket, object, found = strings.Cut(rest, "/")
	if !found || bucket == "" || object == "" {
		return "", "", false
	}
	return bucket, object, true
}
