package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds   int
	Seats    int
	Workers  int
	Bet      int
	Seed     int64
	Strategy string
	Rules    game.Rules
	Logger   *log.Logger
}

// Validate checks the configuration can be simulated
func (c Config) Validate() error {
	var errs []error
	if c.Rounds < 1 {
		errs = append(errs, fmt.Errorf("rounds must be positive, got %d", c.Rounds))
	}
	if c.Seats < 1 || c.Seats > statistics.MaxSeat {
		errs = append(errs, fmt.Errorf("seats must be between 1 and %d, got %d", statistics.MaxSeat, c.Seats))
	}
	if c.Bet < 1 || c.Bet > c.Rules.StartingCash {
		errs = append(errs, fmt.Errorf("bet must be between 1 and %d, got %d", c.Rules.StartingCash, c.Bet))
	}
	if _, err := newStrategy(c.Strategy, c.Bet, c.Rules); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Simulator plays many independent rounds and collects per-hand results
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.Strategy == "" {
		config.Strategy = StrategyBasic
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Run executes the simulation and returns results. Every round is played
// from its own seed, so results are identical for any number of workers.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if err := s.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	results := make([][]statistics.HandResult, s.config.Rounds)
	g, ctx := errgroup.WithContext(ctx)

	for w := range s.config.Workers {
		logger := s.config.Logger.With("worker", w)
		g.Go(func() error {
			for round := w; round < s.config.Rounds; round += s.config.Workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				hands, err := s.playRound(ctx, round)
				if err != nil {
					return fmt.Errorf("round %d: %w", round+1, err)
				}
				results[round] = hands
			}
			logger.Debug("Worker finished")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, hands := range results {
		for _, h := range hands {
			stats.Add(h)
		}
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playRound seats fresh players and plays a single round
func (s *Simulator) playRound(ctx context.Context, round int) ([]statistics.HandResult, error) {
	seed := randutil.Derive(s.config.Seed, round)
	rng := randutil.New(seed)

	strategy, err := newStrategy(s.config.Strategy, s.config.Bet, s.config.Rules)
	if err != nil {
		return nil, err
	}

	seats := make(map[string]int, s.config.Seats)
	players := make([]*game.Participant, s.config.Seats)
	for i := range s.config.Seats {
		players[i] = game.NewPlayer(i+1, s.config.Rules.StartingCash, strategy)
		seats[players[i].Name] = i + 1
	}

	// per-round chatter only shows when debugging
	roundLogger := s.config.Logger.With("seed", seed)
	if lvl := roundLogger.GetLevel(); lvl > log.DebugLevel {
		roundLogger.SetLevel(max(lvl, log.WarnLevel))
	}

	g := game.NewGame(rng, s.config.Rules, players, game.WithLogger(roundLogger))

	result, err := g.PlayRound(ctx)
	if errors.Is(err, deck.ErrEmptyShoe) {
		s.config.Logger.Warn("Shoe ran out, round void", "round", round+1, "seed", seed)
		return nil, nil
	}
	if err != nil {
		s.config.Logger.Error("Failed to play round", "error", err, "seed", seed)
		return nil, err
	}

	handsPerSeat := make(map[string]int, len(seats))
	for _, st := range result.Settlements {
		handsPerSeat[st.Participant]++
	}

	hands := make([]statistics.HandResult, 0, len(result.Settlements))
	for _, st := range result.Settlements {
		hands = append(hands, statistics.HandResult{
			Net:     float64(st.Net()) / float64(s.config.Bet),
			Seed:    seed,
			Seat:    seats[st.Participant],
			Outcome: st.Outcome,
			Doubled: st.Bet > s.config.Bet,
			Split:   handsPerSeat[st.Participant] > 1,
		})
	}
	return hands, nil
}

// RunSimulation is a convenience function for running a simulation with basic parameters
func RunSimulation(ctx context.Context, rounds, seats int, strategy string, seed int64, logger *log.Logger) (*statistics.Statistics, error) {
	rules := game.DefaultRules()
	config := Config{
		Rounds:   rounds,
		Seats:    seats,
		Workers:  1,
		Bet:      rules.StartingCash / 100,
		Seed:     seed,
		Strategy: strategy,
		Rules:    rules,
		Logger:   logger,
	}
	return New(config).Run(ctx)
}

// WriteSummary writes a summary of simulation results
func WriteSummary(w io.Writer, stats *statistics.Statistics, strategy string) {
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== FINAL RESULTS (%s strategy) ===\n", strategy)
	fmt.Fprintf(w, "Hands played: %d\n", stats.Hands)

	fmt.Fprintf(w, "\n=== STATISTICAL RESULTS ===\n")
	fmt.Fprintf(w, "Mean: %.4f bets/hand\n", stats.Mean())
	fmt.Fprintf(w, "House edge: %.2f%%\n", stats.HouseEdge()*100)
	fmt.Fprintf(w, "Std Dev: %.4f bets\n", stats.StdDev())
	fmt.Fprintf(w, "Std Error: %.4f bets\n", stats.StdError())
	fmt.Fprintf(w, "95%% CI: [%.4f, %.4f] bets/hand\n", low, high)

	fmt.Fprintf(w, "\n=== OUTCOMES ===\n")
	for _, o := range []game.Outcome{game.OutcomeWin, game.OutcomeBlackjack, game.OutcomePush, game.OutcomeLose, game.OutcomeBust} {
		fmt.Fprintf(w, "%-10s %5.1f%%\n", o.String()+":", stats.Rate(o)*100)
	}
	fmt.Fprintf(w, "Doubled: %d hands, split: %d hands\n", stats.Doubles, stats.Splits)

	fmt.Fprintf(w, "\n=== SEAT ANALYSIS ===\n")
	for seat := 1; seat <= statistics.MaxSeat; seat++ {
		ss := stats.SeatResults[seat]
		if ss.Hands > 0 {
			fmt.Fprintf(w, "Seat %d: %d hands, %.4f bets/hand\n", seat, ss.Hands, stats.SeatMean(seat))
		}
	}
}
