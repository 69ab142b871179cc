package game

import "math"

// Rules holds the table constants a game is played with
type Rules struct {
	StartingCash    int     // cash each player is seated with
	DealerStandsOn  int     // dealer stands once its hand reaches this value
	BlackjackPayout float64 // winnings ratio for a natural, on top of the returned stake
}

// DefaultRules returns 1000 starting cash, dealer stands on 17, blackjack pays 3:2
func DefaultRules() Rules {
	return Rules{
		StartingCash:    1000,
		DealerStandsOn:  17,
		BlackjackPayout: 1.5,
	}
}

// WinAmount returns the amount credited when the hand wins, stake included.
// A natural pays the blackjack ratio rounded half away from zero; anything
// else pays even money.
func (r Rules) WinAmount(h *Hand) int {
	if h.IsBlackjack() {
		return h.Bet() + int(math.Round(r.BlackjackPayout*float64(h.Bet())))
	}
	return 2 * h.Bet()
}
