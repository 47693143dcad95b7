package library

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"

	"github.com/flophouse/rangeday/pkg/domain/interfaces"
	"github.com/flophouse/rangeday/pkg/domain/model"
)

// File loads the puzzle library from a local JSON file. The file is
// produced by the offline authoring pipeline and re-read on every Load,
// so a redeployed library takes effect without touching this loader.
type File struct {
	path string
}

var _ interfaces.LibraryLoader = &File{}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Load(ctx context.Context) ([]*model.Puzzle, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read library file", goerr.V("path", f.path))
	}

	puzzles, err := decode(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode library file", goerr.V("path", f.path))
	}

	return puzzles, nil
}
