package dealer_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/flophouse/rangeday/pkg/service/dealer"
)

func TestDealerDeal(t *testing.T) {
	d, err := dealer.New(dealer.DefaultConfig())
	gt.NoError(t, err).Required()

	deal, err := d.Deal()
	gt.NoError(t, err).Required()

	gt.Array(t, deal.HoleCards).Length(2)
	gt.Array(t, deal.Board).Length(5)

	// All nine dealt cards come from one deck: no duplicates
	seen := make(map[dealer.Card]struct{})
	for _, hand := range deal.HoleCards {
		gt.Array(t, hand).Length(2)
		for _, c := range hand {
			_, dup := seen[c]
			gt.Bool(t, dup).False()
			seen[c] = struct{}{}
		}
	}
	for _, c := range deal.Board {
		_, dup := seen[c]
		gt.Bool(t, dup).False()
		seen[c] = struct{}{}
	}
	gt.Number(t, len(seen)).Equal(9)

	// Button posts the small blind heads-up
	gt.Value(t, deal.Button).Equal(0)
	gt.Value(t, deal.Blinds[0]).Equal(1)
	gt.Value(t, deal.Blinds[1]).Equal(2)
	gt.Value(t, deal.Stacks[0]).Equal(200)
	gt.Value(t, deal.Stacks[1]).Equal(200)
}

func TestConfigValidate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		cfg := dealer.DefaultConfig()
		gt.NoError(t, cfg.Validate())
	})

	t.Run("non heads-up is rejected", func(t *testing.T) {
		cfg := dealer.DefaultConfig()
		cfg.Players = 6
		gt.Value(t, cfg.Validate()).NotNil()
	})

	t.Run("inverted blinds are rejected", func(t *testing.T) {
		cfg := dealer.DefaultConfig()
		cfg.SmallBlind = 4
		cfg.BigBlind = 2
		gt.Value(t, cfg.Validate()).NotNil()
	})

	t.Run("stack below big blind is rejected", func(t *testing.T) {
		cfg := dealer.DefaultConfig()
		cfg.StartingStack = 1
		gt.Value(t, cfg.Validate()).NotNil()
	})
}
