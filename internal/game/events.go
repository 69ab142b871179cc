package game

import "github.com/lox/blackjack/internal/deck"

// EventType identifies something that happened at the table
type EventType string

const (
	EventRoundStart        EventType = "round_start"
	EventBetPlaced         EventType = "bet_placed"
	EventTurnStart         EventType = "turn_start"
	EventCardDrawn         EventType = "card_drawn"
	EventBusted            EventType = "busted"
	EventBlackjack         EventType = "blackjack"
	EventStood             EventType = "stood"
	EventDoubled           EventType = "doubled"
	EventSplit             EventType = "split"
	EventInsufficientFunds EventType = "insufficient_funds"
	EventDealerBlackjack   EventType = "dealer_blackjack"
	EventTurnEnd           EventType = "turn_end"
	EventSettled           EventType = "settled"
	EventEliminated        EventType = "eliminated"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event describes one table happening for the announcer. Fields that do not
// apply to a type are left zero.
type Event struct {
	Type        EventType
	Round       int
	Participant string
	HandIndex   int
	Card        deck.Card
	Amount      int
	Settlement  *Settlement
}
