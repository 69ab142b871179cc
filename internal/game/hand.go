package game

import (
	"github.com/lox/blackjack/internal/deck"
)

// BlackjackValue is the best possible hand total
const BlackjackValue = 21

// HandState is the per-hand position in the play state machine
type HandState int

const (
	AwaitingAction HandState = iota
	Finished
)

// String returns the string representation of the state
func (s HandState) String() string {
	switch s {
	case AwaitingAction:
		return "awaiting action"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Hand is a set of cards carrying a wager. A participant normally holds one
// hand per round and gains more by splitting.
type Hand struct {
	cards            []deck.Card
	bet              int
	state            HandState
	splittable       bool
	canHaveBlackjack bool
}

// NewHand returns an empty hand with no bet that may be split and may count
// as a natural blackjack
func NewHand() *Hand {
	return &Hand{
		splittable:       true,
		canHaveBlackjack: true,
	}
}

// Cards returns a copy of the cards in draw order
func (h *Hand) Cards() []deck.Card {
	cards := make([]deck.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int { return len(h.cards) }

// Bet returns the wager riding on the hand
func (h *Hand) Bet() int { return h.bet }

// State returns the hand's play state
func (h *Hand) State() HandState { return h.state }

// IsFinished reports whether play on the hand is over
func (h *Hand) IsFinished() bool { return h.state == Finished }

// Splittable reports whether the hand is allowed to be split when paired
func (h *Hand) Splittable() bool { return h.splittable }

// CanHaveBlackjack reports whether a two card 21 counts as a natural
func (h *Hand) CanHaveBlackjack() bool { return h.canHaveBlackjack }

// AddCard appends a drawn card
func (h *Hand) AddCard(c deck.Card) {
	h.cards = append(h.cards, c)
}

// Value returns the blackjack total. Every ace starts at 11 and is dropped to
// 1, one ace at a time, while the total is over 21.
func (h *Hand) Value() int {
	value, aces := 0, 0
	for _, c := range h.cards {
		if c.IsAce() {
			aces++
		}
		value += c.Value()
	}

	for value > BlackjackValue && aces > 0 {
		value -= 10
		aces--
	}
	return value
}

// IsBusted reports whether the hand is over 21
func (h *Hand) IsBusted() bool {
	return h.Value() > BlackjackValue
}

// IsBlackjack reports whether the hand is a natural: two cards totalling 21
// on a hand that did not come from a split
func (h *Hand) IsBlackjack() bool {
	return h.canHaveBlackjack && len(h.cards) == 2 && h.Value() == BlackjackValue
}

// CanSplit reports whether the hand is a splittable pair of equal point value
func (h *Hand) CanSplit() bool {
	return h.splittable && len(h.cards) == 2 && h.cards[0].Value() == h.cards[1].Value()
}

// Split moves the second card into a new hand carrying the same bet. Neither
// hand can be a natural afterwards. The new hand may itself be split again.
func (h *Hand) Split() (*Hand, error) {
	if !h.CanSplit() {
		return nil, ErrCannotSplit
	}

	last := len(h.cards) - 1
	sibling := NewHand()
	sibling.cards = append(sibling.cards, h.cards[last])
	sibling.bet = h.bet
	sibling.canHaveBlackjack = false

	h.cards = h.cards[:last]
	h.canHaveBlackjack = false
	return sibling, nil
}

// DoubleBet doubles the wager. The caller is responsible for funding it.
func (h *Hand) DoubleBet() {
	h.bet *= 2
}

// Finish ends play on the hand. It cannot be undone within a round.
func (h *Hand) Finish() {
	h.state = Finished
}

func (h *Hand) setBet(amount int) {
	h.bet = amount
}

// View returns a read-only snapshot of the hand
func (h *Hand) View() HandView {
	return HandView{
		Cards:     h.Cards(),
		Bet:       h.bet,
		Value:     h.Value(),
		Busted:    h.IsBusted(),
		Blackjack: h.IsBlackjack(),
		Finished:  h.IsFinished(),
		CanSplit:  h.CanSplit(),
	}
}
