package localfile

import (
	"github.com/flophouse/rangeday/pkg/domain/interfaces"
)

// LocalFile persists the assignment history as a single JSON file
// holding the full entry array.
type LocalFile struct {
	history *historyRepository
}

var _ interfaces.Repository = &LocalFile{}

func New(path string) *LocalFile {
	return &LocalFile{
		history: &historyRepository{path: path},
	}
}

func (l *LocalFile) History() interfaces.HistoryRepository {
	return l.history
}

func (l *LocalFile) Close() error {
	return nil
}
