package library

import (
	"context"
	"io"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"

	"github.com/flophouse/rangeday/pkg/domain/interfaces"
	"github.com/flophouse/rangeday/pkg/domain/model"
	"github.com/flophouse/rangeday/pkg/utils/safe"
)

// GCS loads the puzzle library from a Google Cloud Storage object.
// Deployments that can't ship a data file with the binary publish the
// authored library to a bucket instead.
type GCS struct {
	client *storage.Client
	bucket string
	object string
}

var _ interfaces.LibraryLoader = &GCS{}

func NewGCS(ctx context.Context, bucket, object string) (*GCS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}

	return &GCS{
		client: client,
		bucket: bucket,
		object: object,
	}, nil
}

func (g *GCS) Load(ctx context.Context) ([]*model.Puzzle, error) {
	reader, err := g.client.Bucket(g.bucket).Object(g.object).NewReader(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open library object",
			goerr.V("bucket", g.bucket),
			goerr.V("object", g.object),
		)
	}
	defer safe.Close(ctx, reader)

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read library object",
			goerr.V("bucket", g.bucket),
			goerr.V("object", g.object),
		)
	}

	puzzles, err := decode(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode library object",
			goerr.V("bucket", g.bucket),
			goerr.V("object", g.object),
		)
	}

	return puzzles, nil
}

func (g *GCS) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}
