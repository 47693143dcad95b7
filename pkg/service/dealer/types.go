package dealer

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
)

// Card is a playing card in standard poker notation, e.g. "As", "Td"
type Card string

var (
	ranks = []byte("23456789TJQKA")
	suits = []byte("shdc")
)

// Config describes the game to simulate: heads-up no-limit hold'em
// with chip-denominated stacks and blinds.
type Config struct {
	Players       int `toml:"players"`
	StartingStack int `toml:"starting_stack"`
	SmallBlind    int `toml:"small_blind"`
	BigBlind      int `toml:"big_blind"`
}

// DefaultConfig is 100 big blinds deep heads-up, SB 1 / BB 2
func DefaultConfig() Config {
	return Config{
		Players:       2,
		StartingStack: 200,
		SmallBlind:    1,
		BigBlind:      2,
	}
}

// Validate checks if the config describes a playable game
func (c *Config) Validate() error {
	if c.Players != 2 {
		// Only heads-up puzzles are authored for now; blind posting
		// below assumes the button is the small blind.
		return goerr.New("only heads-up (2 players) is supported", goerr.V("players", c.Players))
	}
	if c.SmallBlind <= 0 || c.BigBlind <= 0 {
		return goerr.New("blinds must be positive", goerr.V("small_blind", c.SmallBlind), goerr.V("big_blind", c.BigBlind))
	}
	if c.BigBlind < c.SmallBlind {
		return goerr.New("big blind must not be smaller than small blind")
	}
	if c.StartingStack < c.BigBlind {
		return goerr.New("starting stack must cover the big blind", goerr.V("starting_stack", c.StartingStack))
	}
	return nil
}

// Deal is one simulated hand: hole cards per seat plus the full board.
// Seat 0 holds the button (the small blind when heads-up).
type Deal struct {
	HoleCards [][]Card `json:"hole_cards"`
	Board     []Card   `json:"board"`
	Stacks    []int    `json:"stacks"`
	Blinds    []int    `json:"blinds"`
	Button    int      `json:"button"`
}

// Candidate is an authored puzzle document as written to the library
// file. GTO carries the solver annotation when a solver is configured.
type Candidate struct {
	ID        string          `json:"id"`
	Stacks    []int           `json:"stacks"`
	Blinds    []int           `json:"blinds"`
	Button    int             `json:"button"`
	HoleCards [][]Card        `json:"hole_cards"`
	Board     []Card          `json:"board"`
	GTO       json.RawMessage `json:"gto,omitempty"`
}
