package simulator

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func testConfig(rounds, workers int) Config {
	return Config{
		Rounds:  rounds,
		Seats:   3,
		Workers: workers,
		Bet:     10,
		Seed:    12345,
		Rules:   game.DefaultRules(),
		Logger:  quietLogger(),
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	sim := New(Config{Rounds: 10})

	assert.Equal(t, 1, sim.config.Workers)
	assert.Equal(t, StrategyBasic, sim.config.Strategy)
	assert.NotNil(t, sim.config.Logger)
}

func TestRunPlaysEverySeat(t *testing.T) {
	stats, err := New(testConfig(200, 2)).Run(context.Background())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, stats.Hands, 600)
	for seat := 1; seat <= 3; seat++ {
		assert.GreaterOrEqual(t, stats.SeatResults[seat].Hands, 200, "seat %d", seat)
	}
	assert.Zero(t, stats.SeatResults[4].Hands)
	assert.True(t, stats.IsLedgerBalanced())
	assert.Equal(t, stats.Hands, stats.Wins+stats.Blackjacks+stats.Pushes+stats.Losses+stats.Busts)
}

func TestRunIsDeterministicAcrossWorkers(t *testing.T) {
	single, err := New(testConfig(150, 1)).Run(context.Background())
	require.NoError(t, err)

	parallel, err := New(testConfig(150, 4)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, single.Values, parallel.Values)
	assert.Equal(t, single.Wins, parallel.Wins)
	assert.InDelta(t, single.Mean(), parallel.Mean(), 1e-12)
}

func TestRunDifferentSeedsDiffer(t *testing.T) {
	a, err := New(testConfig(100, 1)).Run(context.Background())
	require.NoError(t, err)

	cfg := testConfig(100, 1)
	cfg.Seed = 999
	b, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, a.Values, b.Values)
}

func TestRunDealerStrategyNeverDoublesOrSplits(t *testing.T) {
	cfg := testConfig(200, 2)
	cfg.Strategy = StrategyDealer

	stats, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.Doubles)
	assert.Zero(t, stats.Splits)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(testConfig(50, 2)).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"no rounds", func(c *Config) { c.Rounds = 0 }, "rounds must be positive"},
		{"too many seats", func(c *Config) { c.Seats = 8 }, "seats must be between 1 and 7"},
		{"bet above cash", func(c *Config) { c.Bet = 5000 }, "bet must be between 1 and 1000"},
		{"unknown strategy", func(c *Config) { c.Strategy = "martingale" }, `unknown strategy "martingale"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(10, 1)
			cfg.Strategy = StrategyBasic
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	_, err := New(testConfig(0, 1)).Run(context.Background())
	assert.ErrorContains(t, err, "invalid simulation config")
}

func TestRunSimulationConvenience(t *testing.T) {
	stats, err := RunSimulation(context.Background(), 20, 1, StrategyBasic, 7, quietLogger())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.Hands, 20)
}

func TestWriteSummary(t *testing.T) {
	stats, err := New(testConfig(50, 1)).Run(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteSummary(&buf, stats, StrategyBasic)

	out := buf.String()
	assert.Contains(t, out, "FINAL RESULTS (basic strategy)")
	assert.Contains(t, out, "Hands played:")
	assert.Contains(t, out, "95% CI:")
	assert.Contains(t, out, "blackjack:")
	assert.Contains(t, out, "Seat 1:")
}

func TestBasicStrategy(t *testing.T) {
	all := []game.Action{game.Hit, game.Stand, game.DoubleDown, game.Split}
	hitStand := []game.Action{game.Hit, game.Stand}

	state := func(notation, up string, handCount int) game.TurnState {
		h := game.NewHand()
		for _, c := range deck.MustParseCards(notation) {
			h.AddCard(c)
		}
		return game.TurnState{
			HandCount: handCount,
			Hand:      h.View(),
			DealerUp:  deck.MustParseCards(up)[0],
		}
	}

	tests := []struct {
		name  string
		state game.TurnState
		valid []game.Action
		want  game.Action
	}{
		{"split aces", state("As Ah", "9c", 1), all, game.Split},
		{"split eights", state("8s 8d", "Tc", 1), all, game.Split},
		{"no re-split", state("8s 8d", "Tc", 2), all, game.Hit},
		{"split not offered", state("8s 8d", "6c", 1), hitStand, game.Stand},
		{"double eleven against ten", state("6s 5d", "Tc", 1), all, game.DoubleDown},
		{"eleven against ace", state("6s 5d", "Ac", 1), all, game.Hit},
		{"double eleven weak dealer", state("6s 5d", "6c", 1), all, game.DoubleDown},
		{"double ten", state("4s 6d", "9c", 1), all, game.DoubleDown},
		{"double not offered", state("6s 5d", "6c", 1), hitStand, game.Hit},
		{"hard seventeen", state("Ts 7d", "Ac", 1), hitStand, game.Stand},
		{"stiff against weak", state("Ts 3d", "5c", 1), hitStand, game.Stand},
		{"stiff against strong", state("Ts 6d", "7c", 1), hitStand, game.Hit},
		{"twelve against three", state("Ts 2d", "3c", 1), hitStand, game.Hit},
		{"twelve against four", state("Ts 2d", "4c", 1), hitStand, game.Stand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := basicStrategy(context.Background(), tt.state, tt.valid)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlatBetCapsAtCash(t *testing.T) {
	policy, err := newStrategy(StrategyBasic, 50, game.DefaultRules())
	require.NoError(t, err)

	bet, err := policy.InitialBet(context.Background(), "Player 1", 20)
	require.NoError(t, err)
	assert.Equal(t, 20, bet)
}
