package dealer

import (
	"math/rand/v2"

	"github.com/m-mizutani/goerr/v2"
)

const (
	holeCardsPerSeat = 2
	boardCards       = 5
)

// Dealer simulates no-limit hold'em deals for the offline authoring
// pipeline. It has no runtime coupling to the scheduler: its output
// only feeds the library file.
type Dealer struct {
	cfg Config
}

func New(cfg Config) (*Dealer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid dealer config")
	}
	return &Dealer{cfg: cfg}, nil
}

// Deal shuffles a fresh 52-card deck and deals hole cards to every
// seat plus the full five-card board. Seat 0 is the button.
func (d *Dealer) Deal() (*Deal, error) {
	needed := d.cfg.Players*holeCardsPerSeat + boardCards
	deck := newDeck()
	if needed > len(deck) {
		return nil, goerr.New("not enough cards for the configured table", goerr.V("players", d.cfg.Players))
	}

	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	deal := &Deal{
		HoleCards: make([][]Card, d.cfg.Players),
		Stacks:    make([]int, d.cfg.Players),
		Blinds:    make([]int, d.cfg.Players),
		Button:    0,
	}

	next := 0
	for seat := 0; seat < d.cfg.Players; seat++ {
		deal.HoleCards[seat] = deck[next : next+holeCardsPerSeat]
		next += holeCardsPerSeat
		deal.Stacks[seat] = d.cfg.StartingStack
	}
	deal.Board = deck[next : next+boardCards]

	// Heads-up the button posts the small blind
	deal.Blinds[0] = d.cfg.SmallBlind
	deal.Blinds[1] = d.cfg.BigBlind

	return deal, nil
}

func newDeck() []Card {
	deck := make([]Card, 0, len(ranks)*len(suits))
	for _, r := range ranks {
		for _, s := range suits {
			deck = append(deck, Card([]byte{r, s}))
		}
	}
	return deck
}
