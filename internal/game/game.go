package game

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
)

// Game seats the participants and plays rounds until only the dealer is left
type Game struct {
	rules        Rules
	participants []*Participant
	dealer       *Participant
	shoeSource   func() *deck.Shoe
	announcer    Announcer
	logger       *log.Logger
	rounds       int
}

// GameOption configures a Game during creation
type GameOption func(*Game)

// WithShoeSource replaces the shuffled shoe built for every round
func WithShoeSource(source func() *deck.Shoe) GameOption {
	return func(g *Game) {
		g.shoeSource = source
	}
}

// WithAnnouncer sets where table state and events are reported
func WithAnnouncer(a Announcer) GameOption {
	return func(g *Game) {
		g.announcer = a
	}
}

// WithLogger sets the logger; a discarding logger is used otherwise
func WithLogger(logger *log.Logger) GameOption {
	return func(g *Game) {
		g.logger = logger
	}
}

// NewGame seats players in order followed by a dealer playing the rules'
// stand threshold. The RNG is required so shuffles are explicit and
// reproducible.
func NewGame(rng *rand.Rand, rules Rules, players []*Participant, opts ...GameOption) *Game {
	if rng == nil {
		panic("rng is required for game creation")
	}

	dealer := NewDealer(NewDealerPolicy(rules.DealerStandsOn))
	g := &Game{
		rules:        rules,
		participants: append(slices.Clone(players), dealer),
		dealer:       dealer,
		shoeSource:   func() *deck.Shoe { return deck.NewShoe(rng) },
		announcer:    NopAnnouncer{},
		logger:       log.New(io.Discard),
	}

	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Rules returns the rules the game is played with
func (g *Game) Rules() Rules { return g.rules }

// Dealer returns the house participant
func (g *Game) Dealer() *Participant { return g.dealer }

// Rounds returns how many rounds have been played
func (g *Game) Rounds() int { return g.rounds }

// Participants returns everyone still seated, dealer last
func (g *Game) Participants() []*Participant {
	return slices.Clone(g.participants)
}

// Players returns the seated participants other than the dealer
func (g *Game) Players() []*Participant {
	return slices.DeleteFunc(g.Participants(), (*Participant).IsDealer)
}

// Over reports whether the dealer is the only participant left
func (g *Game) Over() bool {
	return len(g.participants) <= 1
}

// PlayRound plays one round with a fresh shoe and then unseats every player
// that has run out of cash
func (g *Game) PlayRound(ctx context.Context) (*RoundResult, error) {
	g.rounds++
	r := &Round{
		number:       g.rounds,
		rules:        g.rules,
		shoe:         g.shoeSource(),
		participants: g.participants,
		dealer:       g.dealer,
		announcer:    g.announcer,
		logger:       g.logger.WithPrefix("round"),
	}

	result, err := r.Play(ctx)
	if err != nil {
		return nil, fmt.Errorf("round %d: %w", g.rounds, err)
	}

	g.participants = slices.DeleteFunc(g.participants, (*Participant).IsOut)
	if g.Over() {
		g.logger.Info("Game over", "rounds", g.rounds)
	}
	return result, nil
}

// Run plays rounds until the game is over or ctx is cancelled
func (g *Game) Run(ctx context.Context) error {
	for !g.Over() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := g.PlayRound(ctx); err != nil {
			return err
		}
	}
	return nil
}
