package game

import (
	"context"

	"github.com/lox/blackjack/internal/deck"
)

// HandView is the read-only state of a hand
type HandView struct {
	Cards     []deck.Card
	Bet       int
	Value     int
	Busted    bool
	Blackjack bool
	Finished  bool
	CanSplit  bool
}

// ParticipantView is the read-only state of a participant
type ParticipantView struct {
	ID       int
	Name     string
	Cash     int
	IsDealer bool
	Hands    []HandView
	Current  int // index of the hand being played, -1 when none
}

// Snapshot is the table state handed to the announcer. The flags say how the
// table should be shown; the announcer decides what that looks like.
type Snapshot struct {
	Round          int
	Heading        string
	Participants   []ParticipantView
	HideDealerHole bool
	ShowBets       bool
	ShowValues     bool
}

// TurnState is the immutable view a policy decides from
type TurnState struct {
	Name      string
	Cash      int
	HandIndex int
	HandCount int
	Hand      HandView
	DealerUp  deck.Card
}

// Prompter reads one line of user input after displaying a prompt
type Prompter interface {
	RequestLine(ctx context.Context, prompt string) (string, error)
}

// Announcer renders table state and events and paces play. Implementations
// must not mutate game state.
type Announcer interface {
	Announce(s Snapshot)
	Notify(e Event)
	Pause(ctx context.Context) error
}

// NopAnnouncer discards everything and never blocks
type NopAnnouncer struct{}

func (NopAnnouncer) Announce(Snapshot) {}
func (NopAnnouncer) Notify(Event)      {}

func (NopAnnouncer) Pause(ctx context.Context) error { return ctx.Err() }
