// Package config loads table configuration from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/blackjack/internal/game"
)

// MaxSeats is the most players a table seats, excluding the dealer
const MaxSeats = 7

// fileConfig mirrors the HCL document
type fileConfig struct {
	Rules    *rulesBlock `hcl:"rules,block"`
	Seats    []seatBlock `hcl:"seat,block"`
	Seed     int64       `hcl:"seed,optional"`
	LogLevel string      `hcl:"log_level,optional"`
}

type rulesBlock struct {
	StartingCash    int     `hcl:"starting_cash,optional"`
	DealerStandsOn  int     `hcl:"dealer_stands_on,optional"`
	BlackjackPayout float64 `hcl:"blackjack_payout,optional"`
}

type seatBlock struct {
	Name string `hcl:"name,label"`
	Cash int    `hcl:"cash,optional"`
}

// Seat is a named player position with its starting cash
type Seat struct {
	Name string
	Cash int
}

// Config is the resolved table configuration
type Config struct {
	Rules    game.Rules
	Seats    []Seat
	Seed     int64 // 0 means seed from the clock
	LogLevel string
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Rules:    game.DefaultRules(),
		LogLevel: "info",
	}
}

// Load reads configuration from filename, returning defaults if it does not exist
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes an HCL document and fills in defaults for anything omitted
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	cfg.Seed = fc.Seed
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}

	if fc.Rules != nil {
		if fc.Rules.StartingCash != 0 {
			cfg.Rules.StartingCash = fc.Rules.StartingCash
		}
		if fc.Rules.DealerStandsOn != 0 {
			cfg.Rules.DealerStandsOn = fc.Rules.DealerStandsOn
		}
		if fc.Rules.BlackjackPayout != 0 {
			cfg.Rules.BlackjackPayout = fc.Rules.BlackjackPayout
		}
	}

	for _, s := range fc.Seats {
		cash := s.Cash
		if cash == 0 {
			cash = cfg.Rules.StartingCash
		}
		cfg.Seats = append(cfg.Seats, Seat{Name: s.Name, Cash: cash})
	}

	return cfg, nil
}

// Validate checks the configuration is playable
func (c *Config) Validate() error {
	if c.Rules.StartingCash <= 0 {
		return fmt.Errorf("starting cash must be positive, got %d", c.Rules.StartingCash)
	}
	if c.Rules.DealerStandsOn < 12 || c.Rules.DealerStandsOn > game.BlackjackValue {
		return fmt.Errorf("dealer must stand between 12 and 21, got %d", c.Rules.DealerStandsOn)
	}
	if c.Rules.BlackjackPayout <= 0 {
		return fmt.Errorf("blackjack payout must be positive, got %v", c.Rules.BlackjackPayout)
	}
	if len(c.Seats) > MaxSeats {
		return fmt.Errorf("at most %d seats allowed, got %d", MaxSeats, len(c.Seats))
	}

	seen := make(map[string]bool, len(c.Seats))
	for _, s := range c.Seats {
		if s.Name == "" || s.Name == "Dealer" {
			return fmt.Errorf("invalid seat name %q", s.Name)
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate seat %q", s.Name)
		}
		seen[s.Name] = true
		if s.Cash <= 0 {
			return fmt.Errorf("seat %s: cash must be positive", s.Name)
		}
	}
	return nil
}

// SeatPlayers returns the configured seats, or n generated "Player N" seats
// with the starting cash when none are configured
func (c *Config) SeatPlayers(n int) []Seat {
	if len(c.Seats) > 0 {
		return c.Seats
	}
	seats := make([]Seat, n)
	for i := range seats {
		seats[i] = Seat{Name: fmt.Sprintf("Player %d", i+1), Cash: c.Rules.StartingCash}
	}
	return seats
}
