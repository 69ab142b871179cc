package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/lox/blackjack/internal/deck"
)

// DealerID is the participant id reserved for the dealer
const DealerID = 0

// Role distinguishes the house from the players
type Role int

const (
	RolePlayer Role = iota
	RoleDealer
)

// String returns the string representation of a role
func (r Role) String() string {
	if r == RoleDealer {
		return "dealer"
	}
	return "player"
}

// Participant is anyone seated at the table. The dealer is a participant
// with RoleDealer and a DealerPolicy; it never bets and is never out.
type Participant struct {
	ID      int
	Name    string
	Role    Role
	Cash    int
	Hands   []*Hand
	Current int // hand being played, -1 outside the participant's turn

	policy Policy
}

// NewPlayer seats a player named "Player <id>"
func NewPlayer(id, cash int, policy Policy) *Participant {
	return NewNamedPlayer(id, fmt.Sprintf("Player %d", id), cash, policy)
}

// NewNamedPlayer seats a player with an explicit display name
func NewNamedPlayer(id int, name string, cash int, policy Policy) *Participant {
	p := &Participant{
		ID:     id,
		Name:   name,
		Role:   RolePlayer,
		Cash:   cash,
		policy: policy,
	}
	p.ResetHands()
	return p
}

// NewDealer creates the house participant
func NewDealer(policy Policy) *Participant {
	p := &Participant{
		ID:     DealerID,
		Name:   "Dealer",
		Role:   RoleDealer,
		policy: policy,
	}
	p.ResetHands()
	return p
}

// IsDealer reports whether the participant is the house
func (p *Participant) IsDealer() bool {
	return p.Role == RoleDealer
}

// IsOut reports whether a player has run out of cash. The dealer is never out.
func (p *Participant) IsOut() bool {
	return !p.IsDealer() && p.Cash <= 0
}

// ResetHands replaces all hands with a single empty one
func (p *Participant) ResetHands() {
	p.Hands = []*Hand{NewHand()}
	p.Current = -1
}

// PostInitialBet asks the policy for a wager and places it on the first hand.
// The dealer does not bet.
func (p *Participant) PostInitialBet(ctx context.Context) error {
	if p.IsDealer() {
		return nil
	}
	bet, err := p.policy.InitialBet(ctx, p.Name, p.Cash)
	if err != nil {
		return err
	}
	return p.PlaceBet(bet)
}

// PlaceBet moves amount from cash onto the first hand
func (p *Participant) PlaceBet(amount int) error {
	if amount < 1 || amount > p.Cash {
		return fmt.Errorf("%w: $%d with $%d available", ErrInvalidBet, amount, p.Cash)
	}
	p.Hands[0].setBet(amount)
	p.Cash -= amount
	return nil
}

// ValidActions returns the actions the participant may take on h. Hit and
// stand are always offered; a two card hand adds double down when the bet can
// be matched, and split when it is also a pair. The dealer only hits or stands.
func (p *Participant) ValidActions(h *Hand) []Action {
	actions := []Action{Hit, Stand}
	if p.IsDealer() {
		return actions
	}
	if h.Len() == 2 && h.Bet() <= p.Cash {
		actions = append(actions, DoubleDown)
		if h.CanSplit() {
			actions = append(actions, Split)
		}
	}
	return actions
}

// Apply performs action on h, drawing from shoe as needed, and returns the
// hand's new state. A busted hand is finished and its bet forfeited. Double
// down and split return ErrInsufficientFunds without touching the hand when
// the bet cannot be matched.
func (p *Participant) Apply(h *Hand, action Action, shoe *deck.Shoe) (HandState, error) {
	if h.IsFinished() {
		return h.State(), fmt.Errorf("%w: %s on a finished hand", ErrActionNotAllowed, action)
	}

	switch action {
	case Hit:
		if err := p.Draw(shoe, h); err != nil {
			return h.State(), err
		}
		p.checkBusted(h)

	case Stand:
		h.Finish()

	case DoubleDown:
		if p.IsDealer() || h.Len() != 2 {
			return h.State(), fmt.Errorf("%w: %s with %d cards", ErrActionNotAllowed, action, h.Len())
		}
		if p.Cash < h.Bet() {
			return h.State(), fmt.Errorf("%w: double down needs $%d, have $%d", ErrInsufficientFunds, h.Bet(), p.Cash)
		}
		p.Cash -= h.Bet()
		h.DoubleBet()
		if err := p.Draw(shoe, h); err != nil {
			return h.State(), err
		}
		p.checkBusted(h)
		h.Finish()

	case Split:
		if p.IsDealer() || !h.CanSplit() {
			return h.State(), fmt.Errorf("%w: %s", ErrActionNotAllowed, ErrCannotSplit)
		}
		if p.Cash < h.Bet() {
			return h.State(), fmt.Errorf("%w: split needs $%d, have $%d", ErrInsufficientFunds, h.Bet(), p.Cash)
		}
		sibling, err := h.Split()
		if err != nil {
			return h.State(), err
		}
		p.Cash -= h.Bet()
		p.Hands = append(p.Hands, sibling)

	default:
		return h.State(), fmt.Errorf("%w: unknown action %d", ErrActionNotAllowed, action)
	}

	return h.State(), nil
}

// Draw deals the top card of shoe into h
func (p *Participant) Draw(shoe *deck.Shoe, h *Hand) error {
	c, err := shoe.Draw()
	if err != nil {
		return fmt.Errorf("dealing to %s: %w", p.Name, err)
	}
	h.AddCard(c)
	return nil
}

func (p *Participant) checkBusted(h *Hand) {
	if h.IsBusted() {
		p.LoseBet(h)
		h.Finish()
	}
}

// TakeTurn plays every hand, including hands created by splitting during the
// turn, until each one is finished
func (p *Participant) TakeTurn(ctx context.Context, r *Round) error {
	r.notify(Event{Type: EventTurnStart, Participant: p.Name})

	// hands may grow while iterating
	for i := 0; i < len(p.Hands); i++ {
		h := p.Hands[i]
		p.Current = i

		for !h.IsFinished() {
			r.announce(Snapshot{Heading: p.Name + "'s turn", ShowBets: true, HideDealerHole: !p.IsDealer()})

			if h.IsBlackjack() {
				h.Finish()
				if err := r.emit(ctx, Event{Type: EventBlackjack, Participant: p.Name, HandIndex: i}); err != nil {
					return err
				}
				break
			}

			action, err := p.policy.DecideAction(ctx, p.turnState(i, r), p.ValidActions(h))
			if err != nil {
				return fmt.Errorf("%s deciding action: %w", p.Name, err)
			}
			r.logger.Debug("action", "participant", p.Name, "hand", i, "action", action, "value", h.Value())

			drawn := h.Len()
			if _, err := p.Apply(h, action, r.shoe); err != nil {
				if errors.Is(err, ErrInsufficientFunds) {
					r.logger.Warn("action refused", "participant", p.Name, "action", action, "error", err)
					if err := r.emit(ctx, Event{Type: EventInsufficientFunds, Participant: p.Name, HandIndex: i, Amount: h.Bet()}); err != nil {
						return err
					}
					continue
				}
				return err
			}

			if err := p.announceAction(ctx, r, h, i, action, drawn); err != nil {
				return err
			}
		}
	}

	p.Current = -1
	r.notify(Event{Type: EventTurnEnd, Participant: p.Name})
	return nil
}

func (p *Participant) announceAction(ctx context.Context, r *Round, h *Hand, index int, action Action, drawn int) error {
	var events []Event
	switch action {
	case Stand:
		events = append(events, Event{Type: EventStood, Participant: p.Name, HandIndex: index, Amount: h.Value()})
	case Split:
		events = append(events, Event{Type: EventSplit, Participant: p.Name, HandIndex: index, Amount: h.Bet()})
	case DoubleDown:
		events = append(events, Event{Type: EventDoubled, Participant: p.Name, HandIndex: index, Amount: h.Bet()})
	}

	if h.Len() > drawn {
		events = append(events, Event{Type: EventCardDrawn, Participant: p.Name, HandIndex: index, Card: h.cards[drawn]})
		if h.IsBusted() {
			events = append(events, Event{Type: EventBusted, Participant: p.Name, HandIndex: index, Amount: h.Value()})
		}
	}

	for _, e := range events {
		if err := r.emit(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (p *Participant) turnState(index int, r *Round) TurnState {
	state := TurnState{
		Name:      p.Name,
		Cash:      p.Cash,
		HandIndex: index,
		HandCount: len(p.Hands),
		Hand:      p.Hands[index].View(),
	}
	if up, ok := r.DealerUpCard(); ok {
		state.DealerUp = up
	}
	return state
}

// WinBet credits the stake plus winnings for h and returns the amount paid
func (p *Participant) WinBet(h *Hand, rules Rules) int {
	if p.IsDealer() {
		return 0
	}
	amount := rules.WinAmount(h)
	p.Cash += amount
	return amount
}

// LoseBet is a no-op: the stake left cash when it was bet
func (p *Participant) LoseBet(*Hand) {}

// ReturnBet credits the stake back on a push and returns the amount paid
func (p *Participant) ReturnBet(h *Hand) int {
	if p.IsDealer() {
		return 0
	}
	p.Cash += h.Bet()
	return h.Bet()
}

// View returns a read-only snapshot of the participant
func (p *Participant) View() ParticipantView {
	hands := make([]HandView, len(p.Hands))
	for i, h := range p.Hands {
		hands[i] = h.View()
	}
	return ParticipantView{
		ID:       p.ID,
		Name:     p.Name,
		Cash:     p.Cash,
		IsDealer: p.IsDealer(),
		Hands:    hands,
		Current:  p.Current,
	}
}
