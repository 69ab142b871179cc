package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/console"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

// PlayCmd runs an interactive game at the terminal
type PlayCmd struct {
	Config       string        `help:"Path to an HCL table config" default:"blackjack.hcl" type:"path"`
	Players      int           `short:"p" help:"Number of players, asked for when zero and no seats are configured"`
	StartingCash int           `help:"Starting cash for generated seats, overrides the config"`
	Seed         int64         `help:"RNG seed (0 for random)"`
	Plain        bool          `help:"Read plain lines and never clear the screen"`
	NoWait       bool          `help:"Continue automatically instead of waiting for enter"`
	Delay        time.Duration `default:"1s" help:"Pause between steps when not waiting for enter"`
	LogFile      string        `default:"blackjack.log" help:"File to write logs to" type:"path"`
	Debug        bool          `help:"Enable debug logging"`
}

func (c *PlayCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return c.play(ctx, os.Stdin, os.Stdout, quartz.NewReal())
}

func (c *PlayCmd) play(ctx context.Context, in io.Reader, out io.Writer, clock quartz.Clock) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	logFile, err := openLogFile(c.LogFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	logger, err := newLogger(logFile, "BLACKJACK", cfg.LogLevel, c.Debug)
	if err != nil {
		return err
	}

	var prompter game.Prompter
	if c.Plain {
		prompter = console.NewLinePrompter(in, out)
	} else {
		prompter = console.NewTeaPrompter(in, out)
	}

	err = c.run(ctx, cfg, prompter, out, clock, logger)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, console.ErrInterrupted), errors.Is(err, context.Canceled):
		logger.Info("Player quit", "reason", err)
		fmt.Fprintln(out, "\nGoodbye!")
		return nil
	default:
		logger.Error("Game failed", "error", err)
		return err
	}
}

func (c *PlayCmd) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	if c.StartingCash != 0 {
		cfg.Rules.StartingCash = c.StartingCash
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	if c.Players < 0 || c.Players > config.MaxSeats {
		return nil, fmt.Errorf("players must be between 1 and %d, got %d", config.MaxSeats, c.Players)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *PlayCmd) run(ctx context.Context, cfg *config.Config, prompter game.Prompter, out io.Writer, clock quartz.Clock, logger *log.Logger) error {
	n := c.Players
	if n == 0 && len(cfg.Seats) == 0 {
		var err error
		if n, err = console.AskPlayerCount(ctx, prompter, config.MaxSeats); err != nil {
			return err
		}
	}

	seats := cfg.SeatPlayers(n)
	players := make([]*game.Participant, len(seats))
	policy := game.NewInteractivePolicy(prompter)
	for i, s := range seats {
		players[i] = game.NewNamedPlayer(i+1, s.Name, s.Cash, policy)
	}

	seed := randutil.Seed(cfg.Seed, clock)
	logger.Info("Starting game", "seed", seed, "players", len(players), "starting_cash", cfg.Rules.StartingCash,
		"dealer_stands_on", cfg.Rules.DealerStandsOn, "blackjack_payout", cfg.Rules.BlackjackPayout)

	opts := []console.Option{console.WithClearScreen(!c.Plain)}
	if c.NoWait {
		opts = append(opts, console.WithPacer(console.NewPacer(clock, c.Delay)))
	} else {
		opts = append(opts, console.WithPrompter(prompter))
	}

	g := game.NewGame(randutil.New(seed), cfg.Rules, players,
		game.WithAnnouncer(console.New(out, opts...)),
		game.WithLogger(logger))

	if err := g.Run(ctx); err != nil {
		return err
	}

	fmt.Fprintf(out, "Everyone is out of cash after %d rounds. Thanks for playing!\n", g.Rounds())
	return nil
}
