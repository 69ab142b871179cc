package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrEmptyShoe is returned when drawing from a shoe with no cards left
var ErrEmptyShoe = errors.New("shoe is empty")

// Shoe is the ordered set of cards available for dealing in one round
type Shoe struct {
	cards []Card
	next  int
}

// NewShoe builds all 52 cards and shuffles them with the given RNG
func NewShoe(rng *rand.Rand) *Shoe {
	s := &Shoe{cards: make([]Card, DeckSize)}
	for i := range DeckSize {
		// index is always in range here
		s.cards[i], _ = CardFromIndex(i)
	}

	// Fisher-Yates
	for i := len(s.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
	return s
}

// NewStackedShoe returns a shoe that deals the given cards in order. Used for
// deterministic tests and replays.
func NewStackedShoe(cards ...Card) *Shoe {
	s := &Shoe{cards: make([]Card, len(cards))}
	copy(s.cards, cards)
	return s
}

// Draw removes and returns the top card
func (s *Shoe) Draw() (Card, error) {
	if s.next >= len(s.cards) {
		return Card{}, ErrEmptyShoe
	}
	c := s.cards[s.next]
	s.next++
	return c, nil
}

// HasCards reports whether any cards remain
func (s *Shoe) HasCards() bool {
	return s.next < len(s.cards)
}

// Remaining returns the number of cards left in the shoe
func (s *Shoe) Remaining() int {
	return len(s.cards) - s.next
}
