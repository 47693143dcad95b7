package memory

import (
	"github.com/flophouse/rangeday/pkg/domain/interfaces"
)

// Memory is an in-memory repository for development and tests
type Memory struct {
	history *historyRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		history: newHistoryRepository(),
	}
}

func (m *Memory) History() interfaces.HistoryRepository {
	return m.history
}

func (m *Memory) Close() error {
	return nil
}
