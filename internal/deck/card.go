package deck

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCardIndex is returned when a card index falls outside 0..51
	ErrInvalidCardIndex = errors.New("card index out of range")

	// ErrInvalidNotation is returned when card notation cannot be parsed
	ErrInvalidNotation = errors.New("invalid card notation")
)

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the name of the suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return "?"
	}
}

// Symbol returns the single-glyph form of the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King", "Ace"}

// String returns the name of the rank
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return rankNames[r]
}

// Short returns the one or two character form of the rank (2..10, J, Q, K, A)
func (r Rank) Short() string {
	if r >= Jack && r <= Ace {
		return rankNames[r][:1]
	}
	return r.String()
}

// Points returns the blackjack point value of the rank with aces counted high
func (r Rank) Points() int {
	switch {
	case r >= Two && r <= Ten:
		return int(r) + 2
	case r >= Jack && r <= King:
		return 10
	default:
		return 11
	}
}

// Card is an immutable playing card. Its point value is fixed when it is built.
type Card struct {
	rank   Rank
	suit   Suit
	points int
}

// NewCard builds a card from its rank and suit
func NewCard(rank Rank, suit Suit) Card {
	return Card{rank: rank, suit: suit, points: rank.Points()}
}

// CardFromIndex builds the card for a deck index in 0..51. The rank is
// index mod 13 and the suit is index mod 4, which covers every rank and suit
// pairing exactly once across the 52 indices.
func CardFromIndex(index int) (Card, error) {
	if index < 0 || index >= DeckSize {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidCardIndex, index)
	}
	return NewCard(Rank(index%13), Suit(index%4)), nil
}

// Rank returns the card's rank
func (c Card) Rank() Rank { return c.rank }

// Suit returns the card's suit
func (c Card) Suit() Suit { return c.suit }

// Value returns the blackjack point value (2-11, aces high)
func (c Card) Value() int { return c.points }

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool { return c.rank == Ace }

// IsRed returns true if the card is red
func (c Card) IsRed() bool { return c.suit.IsRed() }

// String describes the card, e.g. "Ace of Spades"
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.rank, c.suit)
}

// Short returns the compact form of the card, e.g. "A♠"
func (c Card) Short() string {
	return c.rank.Short() + c.suit.Symbol()
}

// ParseCard parses compact notation such as "As", "10h", "Td" or "9c"
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	rankPart, suitPart := strings.ToUpper(s[:len(s)-1]), strings.ToLower(s[len(s)-1:])

	var rank Rank
	switch rankPart {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "T", "10":
		rank = Ten
	default:
		if len(rankPart) != 1 || rankPart[0] < '2' || rankPart[0] > '9' {
			return Card{}, fmt.Errorf("%w: bad rank in %q", ErrInvalidNotation, s)
		}
		rank = Rank(rankPart[0] - '2')
	}

	var suit Suit
	switch suitPart {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		return Card{}, fmt.Errorf("%w: bad suit in %q", ErrInvalidNotation, s)
	}

	return NewCard(rank, suit), nil
}

// ParseCards parses whitespace separated card notation, e.g. "As Kd 10h"
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}
