package game

// Outcome is how a hand finished against the dealer
type Outcome int

const (
	OutcomeLose Outcome = iota
	OutcomeBust
	OutcomePush
	OutcomeWin
	OutcomeBlackjack
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeLose:
		return "lose"
	case OutcomeBust:
		return "bust"
	case OutcomePush:
		return "push"
	case OutcomeWin:
		return "win"
	case OutcomeBlackjack:
		return "blackjack"
	default:
		return "unknown"
	}
}

// Settlement records how one player hand was paid
type Settlement struct {
	Participant string
	HandIndex   int
	Bet         int
	Value       int
	Outcome     Outcome
	Credited    int // returned to cash, stake included
}

// Net returns the hand's profit or loss for the round
func (s Settlement) Net() int {
	return s.Credited - s.Bet
}

// Resolve pays every player hand against the dealer's hand. Busted player
// hands already forfeited and are only recorded. When the dealer busts every
// remaining hand wins; otherwise higher value wins, lower loses and equal
// pushes.
func Resolve(dealerHand *Hand, participants []*Participant, rules Rules) []Settlement {
	var settlements []Settlement
	dealerBusted := dealerHand.IsBusted()
	dealerValue := dealerHand.Value()

	for _, p := range participants {
		if p.IsDealer() {
			continue
		}
		for i, h := range p.Hands {
			s := Settlement{
				Participant: p.Name,
				HandIndex:   i,
				Bet:         h.Bet(),
				Value:       h.Value(),
			}

			switch {
			case h.IsBusted():
				s.Outcome = OutcomeBust
			case dealerBusted || h.Value() > dealerValue:
				s.Outcome = OutcomeWin
				if h.IsBlackjack() {
					s.Outcome = OutcomeBlackjack
				}
				s.Credited = p.WinBet(h, rules)
			case h.Value() < dealerValue:
				s.Outcome = OutcomeLose
				p.LoseBet(h)
			default:
				s.Outcome = OutcomePush
				s.Credited = p.ReturnBet(h)
			}

			settlements = append(settlements, s)
		}
	}
	return settlements
}
