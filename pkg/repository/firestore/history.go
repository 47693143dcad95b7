package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/flophouse/rangeday/pkg/domain/model"
	"github.com/flophouse/rangeday/pkg/utils/logging"
)

const (
	schedulerCollection = "scheduler"
	historyDocument     = "history"
)

type historyRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

// historyDoc is the Firestore persistence model
type historyDoc struct {
	Entries []*model.Assignment `firestore:"entries"`
}

func (r *historyRepository) docRef() *firestore.DocumentRef {
	name := schedulerCollection
	if r.collectionPrefix != "" {
		name = r.collectionPrefix + name
	}
	return r.client.Collection(name).Doc(historyDocument)
}

func (r *historyRepository) Load(ctx context.Context) (model.History, error) {
	doc, err := r.docRef().Get(ctx)
	if err != nil {
		// No document yet means first run
		if status.Code(err) == codes.NotFound {
			return model.History{}, nil
		}
		return nil, goerr.Wrap(err, "failed to get history document")
	}

	var data historyDoc
	if err := doc.DataTo(&data); err != nil {
		// Advisory derived state: a document this code can no longer
		// decode is treated as empty rather than failing delivery
		logging.From(ctx).Warn("history document is malformed, treating as empty",
			"error", err.Error(),
		)
		return model.History{}, nil
	}

	if data.Entries == nil {
		return model.History{}, nil
	}
	return model.History(data.Entries), nil
}

func (r *historyRepository) Save(ctx context.Context, history model.History) error {
	if history == nil {
		history = model.History{}
	}

	if _, err := r.docRef().Set(ctx, &historyDoc{Entries: history}); err != nil {
		return goerr.Wrap(err, "failed to save history document", goerr.V("entries", len(history)))
	}

	return nil
}
