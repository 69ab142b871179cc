package simulator

import (
	"context"
	"fmt"
	"slices"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// Strategies a simulated seat can play
const (
	StrategyBasic  = "basic"
	StrategyDealer = "dealer"
)

// Strategies lists the accepted strategy names
var Strategies = []string{StrategyBasic, StrategyDealer}

func newStrategy(name string, bet int, rules game.Rules) (game.Policy, error) {
	switch name {
	case StrategyBasic:
		return flatBet{bet: bet, decide: basicStrategy}, nil
	case StrategyDealer:
		dealer := game.NewDealerPolicy(rules.DealerStandsOn)
		return flatBet{bet: bet, decide: dealer.DecideAction}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q, want one of %v", name, Strategies)
	}
}

type decideFunc func(ctx context.Context, state game.TurnState, valid []game.Action) (game.Action, error)

// flatBet wagers the same amount every round
type flatBet struct {
	bet    int
	decide decideFunc
}

func (f flatBet) InitialBet(_ context.Context, _ string, cash int) (int, error) {
	return min(f.bet, cash), nil
}

func (f flatBet) DecideAction(ctx context.Context, state game.TurnState, valid []game.Action) (game.Action, error) {
	return f.decide(ctx, state, valid)
}

// basicStrategy is a simplified chart: split aces and eights once, double on 10
// and 11 against a weaker up card, and otherwise stand on stiff hands only
// when the dealer shows 2 through 6.
func basicStrategy(_ context.Context, state game.TurnState, valid []game.Action) (game.Action, error) {
	hand := state.Hand
	up := state.DealerUp.Value()

	if slices.Contains(valid, game.Split) && state.HandCount == 1 {
		if r := hand.Cards[0].Rank(); r == deck.Ace || r == deck.Eight {
			return game.Split, nil
		}
	}

	if slices.Contains(valid, game.DoubleDown) && (hand.Value == 11 || hand.Value == 10) && up < hand.Value {
		return game.DoubleDown, nil
	}

	switch {
	case hand.Value >= 17:
		return game.Stand, nil
	case hand.Value >= 13 && up <= 6:
		return game.Stand, nil
	case hand.Value == 12 && up >= 4 && up <= 6:
		return game.Stand, nil
	default:
		return game.Hit, nil
	}
}
