package game

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
)

// RoundResult summarises one betting round
type RoundResult struct {
	Number          int
	DealerValue     int
	DealerBusted    bool
	DealerBlackjack bool
	Settlements     []Settlement
	Eliminated      []string
}

// Net returns the named participant's total profit or loss for the round
func (rr *RoundResult) Net(name string) int {
	net := 0
	for _, s := range rr.Settlements {
		if s.Participant == name {
			net += s.Net()
		}
	}
	return net
}

// Round holds the state scoped to a single betting round: the shoe and the
// participants seated when it began. The dealer is always the last participant.
type Round struct {
	number       int
	rules        Rules
	shoe         *deck.Shoe
	participants []*Participant
	dealer       *Participant
	announcer    Announcer
	logger       *log.Logger
}

// Number returns the round's sequence number, starting at 1
func (r *Round) Number() int { return r.number }

// Shoe returns the shoe the round is dealt from
func (r *Round) Shoe() *deck.Shoe { return r.shoe }

// DealerUpCard returns the dealer's first card once it has been dealt
func (r *Round) DealerUpCard() (deck.Card, bool) {
	h := r.dealer.Hands[0]
	if h.Len() == 0 {
		return deck.Card{}, false
	}
	return h.cards[0], true
}

// Play runs the round: reset hands, collect bets, deal two cards each, let
// everyone play unless the dealer has a natural, then settle every player hand.
func (r *Round) Play(ctx context.Context) (*RoundResult, error) {
	r.logger.Info("Round starting", "round", r.number, "participants", len(r.participants))
	r.notify(Event{Type: EventRoundStart})

	for _, p := range r.participants {
		p.ResetHands()
	}

	for _, p := range r.participants {
		if err := p.PostInitialBet(ctx); err != nil {
			return nil, fmt.Errorf("collecting bet from %s: %w", p.Name, err)
		}
		if !p.IsDealer() {
			r.logger.Debug("Bet placed", "participant", p.Name, "bet", p.Hands[0].Bet(), "cash", p.Cash)
			r.notify(Event{Type: EventBetPlaced, Participant: p.Name, Amount: p.Hands[0].Bet()})
		}
	}

	if err := r.deal(); err != nil {
		return nil, err
	}

	result := &RoundResult{Number: r.number}
	dealerHand := r.dealer.Hands[0]

	if dealerHand.IsBlackjack() {
		// nobody acts, not even players holding a natural
		result.DealerBlackjack = true
		r.logger.Info("Dealer has blackjack", "round", r.number)
		r.announce(Snapshot{Heading: "Dealer has blackjack!", ShowBets: true})
		if err := r.emit(ctx, Event{Type: EventDealerBlackjack, Participant: r.dealer.Name}); err != nil {
			return nil, err
		}
	} else {
		for _, p := range r.participants {
			if err := p.TakeTurn(ctx, r); err != nil {
				return nil, err
			}
		}
	}

	result.DealerValue = dealerHand.Value()
	result.DealerBusted = dealerHand.IsBusted()
	result.Settlements = Resolve(dealerHand, r.participants, r.rules)
	for i := range result.Settlements {
		s := result.Settlements[i]
		r.logger.Debug("Hand settled", "participant", s.Participant, "hand", s.HandIndex, "outcome", s.Outcome, "credited", s.Credited)
		r.notify(Event{Type: EventSettled, Participant: s.Participant, HandIndex: s.HandIndex, Amount: s.Credited, Settlement: &s})
	}
	if err := r.announcer.Pause(ctx); err != nil {
		return nil, err
	}

	r.announce(Snapshot{Heading: "Round Summary", ShowValues: true})
	for _, p := range r.participants {
		if p.IsOut() {
			result.Eliminated = append(result.Eliminated, p.Name)
			r.notify(Event{Type: EventEliminated, Participant: p.Name})
		}
	}
	if err := r.announcer.Pause(ctx); err != nil {
		return nil, err
	}

	r.logger.Info("Round complete", "round", r.number, "dealer", result.DealerValue, "eliminated", len(result.Eliminated))
	return result, nil
}

// deal gives one card to everyone in seat order, twice
func (r *Round) deal() error {
	for range 2 {
		for _, p := range r.participants {
			if err := p.Draw(r.shoe, p.Hands[0]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Round) announce(s Snapshot) {
	s.Round = r.number
	s.Participants = make([]ParticipantView, len(r.participants))
	for i, p := range r.participants {
		s.Participants[i] = p.View()
	}
	r.announcer.Announce(s)
}

func (r *Round) notify(e Event) {
	e.Round = r.number
	r.announcer.Notify(e)
}

// emit notifies and then waits for the announcer to let play continue
func (r *Round) emit(ctx context.Context, e Event) error {
	r.notify(e)
	return r.announcer.Pause(ctx)
}
