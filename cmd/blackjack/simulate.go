package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/simulator"
)

// SimulateCmd estimates the house edge by playing many rounds unattended
type SimulateCmd struct {
	Config   string `help:"Path to an HCL table config" default:"blackjack.hcl" type:"path"`
	Rounds   int    `default:"10000" help:"Number of rounds to simulate"`
	Seats    int    `default:"1" help:"Seats playing every round"`
	Bet      int    `default:"10" help:"Flat bet per hand"`
	Strategy string `default:"basic" enum:"basic,dealer" help:"Seat strategy: basic, dealer"`
	Workers  int    `help:"Parallel workers (0 for one per CPU)"`
	Seed     int64  `help:"RNG seed (0 for random)"`
	Debug    bool   `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := newLogger(os.Stderr, "SIM", cfg.LogLevel, c.Debug)
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = cfg.Seed
	}
	seed = randutil.Seed(seed, quartz.NewReal())

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	logger.Info("Starting simulation", "rounds", c.Rounds, "seats", c.Seats, "bet", c.Bet,
		"strategy", c.Strategy, "workers", workers, "seed", seed)

	start := time.Now()
	stats, err := simulator.New(simulator.Config{
		Rounds:   c.Rounds,
		Seats:    c.Seats,
		Workers:  workers,
		Bet:      c.Bet,
		Seed:     seed,
		Strategy: c.Strategy,
		Rules:    cfg.Rules,
		Logger:   logger,
	}).Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("Simulation complete", "hands", stats.Hands, "elapsed", time.Since(start).Round(time.Millisecond))
	simulator.WriteSummary(os.Stdout, stats, c.Strategy)
	return nil
}
