package dealer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

const (
	solverInputFile  = "solver_input.txt"
	solverOutputFile = "output_result.json"
)

// Solver wraps the external console equity solver. The contract is
// file based: a plain-text hand description goes in, a JSON strategy
// annotation comes out. Each invocation gets its own scratch directory
// so concurrent deals never share files.
type Solver struct {
	binPath string
}

func NewSolver(binPath string) (*Solver, error) {
	if binPath == "" {
		return nil, goerr.New("solver binary path is empty")
	}
	if _, err := os.Stat(binPath); err != nil {
		return nil, goerr.Wrap(err, "solver binary not found", goerr.V("path", binPath))
	}
	return &Solver{binPath: binPath}, nil
}

// Annotate runs the solver over one deal and returns its raw JSON
// output. The output is validated as JSON but otherwise passed through
// untouched into the puzzle payload.
func (s *Solver) Annotate(ctx context.Context, deal *Deal) (json.RawMessage, error) {
	dir, err := os.MkdirTemp("", "rangeday-solver-*")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create solver scratch directory")
	}
	defer os.RemoveAll(dir)

	inputPath := filepath.Join(dir, solverInputFile)
	outputPath := filepath.Join(dir, solverOutputFile)

	if err := os.WriteFile(inputPath, []byte(formatSolverInput(deal)), 0o600); err != nil {
		return nil, goerr.Wrap(err, "failed to write solver input", goerr.V("path", inputPath))
	}

	cmd := exec.CommandContext(ctx, s.binPath, "--input", inputPath, "--output", outputPath)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, goerr.Wrap(err, "solver execution failed",
			goerr.V("binary", s.binPath),
			goerr.V("output", string(out)),
		)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read solver output", goerr.V("path", outputPath))
	}
	if !json.Valid(data) {
		return nil, goerr.New("solver output is not valid JSON", goerr.V("path", outputPath))
	}

	return json.RawMessage(data), nil
}

// formatSolverInput renders the hand in the solver's line-oriented
// input format
func formatSolverInput(deal *Deal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "players %d\n", len(deal.HoleCards))
	fmt.Fprintf(&b, "button %d\n", deal.Button)
	fmt.Fprintf(&b, "stacks %s\n", joinInts(deal.Stacks))
	fmt.Fprintf(&b, "blinds %s\n", joinInts(deal.Blinds))
	for seat, cards := range deal.HoleCards {
		fmt.Fprintf(&b, "hole %d %s\n", seat, joinCards(cards))
	}
	fmt.Fprintf(&b, "board %s\n", joinCards(deal.Board))
	return b.String()
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, " ")
}

func joinCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}
