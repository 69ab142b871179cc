package statistics

import (
	"fmt"
	"math"
	"slices"

	"github.com/lox/blackjack/internal/game"
)

// MaxSeat is the highest seat number tracked per seat
const MaxSeat = 7

// HandResult represents the outcome of a single settled player hand
type HandResult struct {
	Net     float64      // Profit or loss in units of the flat bet
	Seed    int64        // RNG seed of the round (for replay)
	Seat    int          // Seat the hand was played from (1-7)
	Outcome game.Outcome // How the hand finished against the dealer
	Doubled bool         // Bet was doubled down
	Split   bool         // Hand came from a split
}

// SeatStats tracks statistics for a specific seat
type SeatStats struct {
	Hands int
	Sum   float64
	Sum2  float64
}

// Statistics tracks results of a blackjack simulation
type Statistics struct {
	Hands  int
	Sum    float64
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation

	Wins       int
	Blackjacks int
	Pushes     int
	Losses     int
	Busts      int
	Doubles    int
	Splits     int

	// Ledger buckets, each the net of its outcomes
	WinUnits  float64 // wins and blackjacks
	LossUnits float64 // losses and busts
	PushUnits float64
	AllUnits  float64

	SeatResults [MaxSeat + 1]SeatStats // Index 0 unused
}

// Mean returns the expected profit per hand in bet units
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.Sum / float64(s.Hands)
}

// HouseEdge returns the house's advantage as a fraction of the bet
func (s *Statistics) HouseEdge() float64 {
	return -s.Mean()
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates a new hand result into the statistics
func (s *Statistics) Add(result HandResult) {
	net := result.Net
	s.Hands++
	s.Sum += net
	s.Sum2 += net * net
	s.Values = append(s.Values, net)
	s.AllUnits += net

	switch result.Outcome {
	case game.OutcomeWin:
		s.Wins++
		s.WinUnits += net
	case game.OutcomeBlackjack:
		s.Blackjacks++
		s.WinUnits += net
	case game.OutcomePush:
		s.Pushes++
		s.PushUnits += net
	case game.OutcomeLose:
		s.Losses++
		s.LossUnits += net
	case game.OutcomeBust:
		s.Busts++
		s.LossUnits += net
	}

	if result.Doubled {
		s.Doubles++
	}
	if result.Split {
		s.Splits++
	}

	if seat := result.Seat; seat >= 1 && seat <= MaxSeat {
		s.SeatResults[seat].Hands++
		s.SeatResults[seat].Sum += net
		s.SeatResults[seat].Sum2 += net * net
	}
}

// Rate returns the fraction of hands that finished with outcome
func (s *Statistics) Rate(outcome game.Outcome) float64 {
	if s.Hands == 0 {
		return 0
	}
	var n int
	switch outcome {
	case game.OutcomeWin:
		n = s.Wins
	case game.OutcomeBlackjack:
		n = s.Blackjacks
	case game.OutcomePush:
		n = s.Pushes
	case game.OutcomeLose:
		n = s.Losses
	case game.OutcomeBust:
		n = s.Busts
	}
	return float64(n) / float64(s.Hands)
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := slices.Sorted(slices.Values(s.Values))

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := slices.Sorted(slices.Values(s.Values))

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// SeatMean returns the mean result for a specific seat (1-7)
func (s *Statistics) SeatMean(seat int) float64 {
	if seat < 1 || seat > MaxSeat {
		return 0
	}
	ss := s.SeatResults[seat]
	if ss.Hands == 0 {
		return 0
	}
	return ss.Sum / float64(ss.Hands)
}

// IsLedgerBalanced checks if the accounting is consistent
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllUnits-s.WinUnits-s.LossUnits-s.PushUnits) <= 1e-6
}

// Validate performs comprehensive validation of statistics data
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: all=%.6f, win=%.6f, loss=%.6f, push=%.6f",
			s.AllUnits, s.WinUnits, s.LossUnits, s.PushUnits)
	}

	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}

	if len(s.Values) != s.Hands {
		return fmt.Errorf("values array length (%d) does not match hands count (%d)",
			len(s.Values), s.Hands)
	}

	outcomes := s.Wins + s.Blackjacks + s.Pushes + s.Losses + s.Busts
	if outcomes != s.Hands {
		return fmt.Errorf("outcome total (%d) does not match hands count (%d)", outcomes, s.Hands)
	}

	seatHands := 0
	for seat := 1; seat <= MaxSeat; seat++ {
		seatHands += s.SeatResults[seat].Hands
	}
	if seatHands != s.Hands {
		return fmt.Errorf("seat hands total (%d) does not match total hands (%d)", seatHands, s.Hands)
	}

	return nil
}
