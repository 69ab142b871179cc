package game

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// newTestGame seats players against a dealer and deals every round from the
// same stacked notation. Cards are dealt one per seat in order, twice, dealer last.
func newTestGame(notation string, players ...*Participant) (*Game, *RecordingAnnouncer) {
	announcer := &RecordingAnnouncer{}
	g := NewGame(randutil.New(1), DefaultRules(), players,
		WithShoeSource(func() *deck.Shoe { return stacked(notation) }),
		WithAnnouncer(announcer),
		WithLogger(quietLogger()),
	)
	return g, announcer
}

func TestRoundDealerBlackjackSkipsTurns(t *testing.T) {
	t.Parallel()

	p1 := NewPlayer(1, 1000, NewScriptedPolicy(100))
	p2 := NewPlayer(2, 1000, NewScriptedPolicy(100))
	g, announcer := newTestGame("9h 10c As 8d 7s Kd", p1, p2)

	result, err := g.PlayRound(context.Background())
	require.NoError(t, err)

	assert.True(t, result.DealerBlackjack)
	assert.Empty(t, p1.policy.(*ScriptedPolicy).Offered, "no player acts")
	assert.Empty(t, p2.policy.(*ScriptedPolicy).Offered)
	assert.Equal(t, 900, p1.Cash)
	assert.Equal(t, 900, p2.Cash)
	assert.Contains(t, announcer.EventTypes(), EventDealerBlackjack)
	assert.NotContains(t, announcer.EventTypes(), EventTurnStart)
}

func TestRoundDealerBlackjackAgainstPlayerBlackjack(t *testing.T) {
	t.Parallel()

	p1 := NewPlayer(1, 1000, NewScriptedPolicy(100))
	g, _ := newTestGame("As Ad Kh Kd", p1)

	result, err := g.PlayRound(context.Background())
	require.NoError(t, err)

	assert.True(t, result.DealerBlackjack)
	require.Len(t, result.Settlements, 1)
	assert.Equal(t, OutcomePush, result.Settlements[0].Outcome)
	assert.Equal(t, 1000, p1.Cash)
}

func TestRoundPlayerHitsAndWins(t *testing.T) {
	t.Parallel()

	policy := NewScriptedPolicy(100, Hit, Stand)
	p1 := NewPlayer(1, 1000, policy)
	g, announcer := newTestGame("10h 10s 6c 7h 5d", p1)

	result, err := g.PlayRound(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 17, result.DealerValue)
	require.Len(t, result.Settlements, 1)
	assert.Equal(t, OutcomeWin, result.Settlements[0].Outcome)
	assert.Equal(t, 21, result.Settlements[0].Value)
	assert.Equal(t, 1100, p1.Cash)
	assert.Equal(t, 100, result.Net("Player 1"))

	require.Len(t, policy.Offered, 2)
	assert.Equal(t, []Action{Hit, Stand, DoubleDown}, policy.Offered[0])
	assert.Equal(t, []Action{Hit, Stand}, policy.Offered[1])

	assert.Contains(t, announcer.EventTypes(), EventCardDrawn)
	assert.Contains(t, announcer.EventTypes(), EventStood)
	assert.Contains(t, announcer.EventTypes(), EventSettled)
}

func TestRoundHidesDealerHoleCardDuringPlayerTurns(t *testing.T) {
	t.Parallel()

	p1 := NewPlayer(1, 1000, NewScriptedPolicy(100, Stand))
	g, announcer := newTestGame("10h 10s 8c 6h 9c", p1)

	_, err := g.PlayRound(context.Background())
	require.NoError(t, err)

	var sawPlayerTurn, sawDealerTurn bool
	for _, s := range announcer.Snapshots {
		switch s.Heading {
		case "Player 1's turn":
			sawPlayerTurn = true
			assert.True(t, s.HideDealerHole)
			assert.True(t, s.ShowBets)
		case "Dealer's turn":
			sawDealerTurn = true
			assert.False(t, s.HideDealerHole)
		}
	}
	assert.True(t, sawPlayerTurn)
	assert.True(t, sawDealerTurn)
}

func TestRoundDealerBusts(t *testing.T) {
	t.Parallel()

	p1 := NewPlayer(1, 1000, NewScriptedPolicy(100, Stand))
	g, _ := newTestGame("10h 10s 8c 6h 9c", p1)

	result, err := g.PlayRound(context.Background())
	require.NoError(t, err)

	assert.True(t, result.DealerBusted)
	assert.Equal(t, 25, result.DealerValue)
	assert.Equal(t, 3, g.Dealer().Hands[0].Len())
	assert.Equal(t, 1100, p1.Cash)
}

func TestRoundPlayerNaturalAutoStands(t *testing.T) {
	t.Parallel()

	policy := NewScriptedPolicy(100)
	p1 := NewPlayer(1, 1000, policy)
	g, announcer := newTestGame("As 10s Kh 9h", p1)

	result, err := g.PlayRound(context.Background())
	require.NoError(t, err)

	assert.Empty(t, policy.Offered, "a natural is never asked for an action")
	assert.Contains(t, announcer.EventTypes(), EventBlackjack)
	require.Len(t, result.Settlements, 1)
	assert.Equal(t, OutcomeBlackjack, result.Settlements[0].Outcome)
	assert.Equal(t, 1150, p1.Cash)
}

func TestRoundDoubleDown(t *testing.T) {
	t.Parallel()

	policy := NewScriptedPolicy(100, DoubleDown)
	p1 := NewPlayer(1, 1000, policy)
	g, _ := newTestGame("5h 10s 6c 7h 10d", p1)

	result, err := g.PlayRound(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Settlements, 1)
	assert.Equal(t, 200, result.Settlements[0].Bet)
	assert.Equal(t, 400, result.Settlements[0].Credited)
	assert.Equal(t, 1200, p1.Cash)
	assert.Len(t, policy.Offered, 1, "doubling ends the hand")
}

func TestRoundSplitPlaysBothHands(t *testing.T) {
	t.Parallel()

	policy := NewScriptedPolicy(100, Split, Hit, Stand, Hit, Hit, Stand)
	p1 := NewPlayer(1, 1000, policy)
	g, announcer := newTestGame("8h 10s 8c 9h 10d 3s 9d", p1)

	result, err := g.PlayRound(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []Action{Hit, Stand, DoubleDown, Split}, policy.Offered[0])
	assert.Equal(t, []Action{Hit, Stand}, policy.Offered[1], "one card hand after split")
	assert.Empty(t, policy.Actions)

	require.Len(t, p1.Hands, 2)
	require.Len(t, result.Settlements, 2)
	assert.Equal(t, OutcomeLose, result.Settlements[0].Outcome)
	assert.Equal(t, 18, result.Settlements[0].Value)
	assert.Equal(t, OutcomeWin, result.Settlements[1].Outcome)
	assert.Equal(t, 20, result.Settlements[1].Value)
	assert.Equal(t, 1000, p1.Cash)
	assert.Contains(t, announcer.EventTypes(), EventSplit)
}

func TestRoundInsufficientFundsIsReported(t *testing.T) {
	t.Parallel()

	// the policy insists on doubling with no cash left, then stands
	policy := NewScriptedPolicy(100, DoubleDown, Stand)
	p1 := NewPlayer(1, 100, policy)
	g, announcer := newTestGame("5h 10s 6c 7h", p1)

	_, err := g.PlayRound(context.Background())
	require.NoError(t, err)

	assert.Contains(t, announcer.EventTypes(), EventInsufficientFunds)
	assert.Equal(t, 100, p1.Hands[0].Bet())
	assert.Equal(t, 2, p1.Hands[0].Len())
}

func TestRoundEmptyShoeIsFatal(t *testing.T) {
	t.Parallel()

	p1 := NewPlayer(1, 1000, NewScriptedPolicy(100))
	g, _ := newTestGame("10h 10s", p1)

	_, err := g.PlayRound(context.Background())
	assert.ErrorIs(t, err, deck.ErrEmptyShoe)
}

func TestRoundPolicyErrorAborts(t *testing.T) {
	t.Parallel()

	p1 := NewPlayer(1, 1000, NewInteractivePolicy(NewScriptedPrompter("100")))
	g, _ := newTestGame("10h 10s 6c 7h", p1)

	_, err := g.PlayRound(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestGameEliminatesBrokePlayers(t *testing.T) {
	t.Parallel()

	broke := NewPlayer(1, 100, NewScriptedPolicy(100, Stand))
	rich := NewPlayer(2, 1000, NewScriptedPolicy(100, Stand))
	g, announcer := newTestGame("10h 10c 10s 7c 9d 9h", broke, rich)

	result, err := g.PlayRound(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Player 1"}, result.Eliminated)
	assert.Zero(t, broke.Cash)
	assert.Contains(t, announcer.EventTypes(), EventEliminated)
	assert.Equal(t, []*Participant{rich}, g.Players())
	assert.Len(t, g.Participants(), 2)
	assert.False(t, g.Over())
}

func TestGameRunEndsWhenOnlyDealerRemains(t *testing.T) {
	t.Parallel()

	p1 := NewPlayer(1, 100, &ScriptedPolicy{Bets: []int{100}, Actions: []Action{Stand}})
	g, _ := newTestGame("10h 10s 7c 9h", p1)

	require.NoError(t, g.Run(context.Background()))
	assert.True(t, g.Over())
	assert.Equal(t, 1, g.Rounds())
	assert.Equal(t, []*Participant{g.Dealer()}, g.Participants())
}

func TestGameRunHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, _ := newTestGame("10h 10s 7c 9h", NewPlayer(1, 100, NewScriptedPolicy(100, Stand)))
	assert.ErrorIs(t, g.Run(ctx), context.Canceled)
	assert.Zero(t, g.Rounds())
}

func TestGameInteractiveRound(t *testing.T) {
	t.Parallel()

	prompter := NewScriptedPrompter("lots", "50", "split?", "h", "st")
	p1 := NewPlayer(1, 1000, NewInteractivePolicy(prompter))
	g, _ := newTestGame("10h 10s 2c 7h 5d", p1)

	result, err := g.PlayRound(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Settlements, 1)
	assert.Equal(t, 17, result.Settlements[0].Value)
	assert.Equal(t, OutcomePush, result.Settlements[0].Outcome)
	assert.Equal(t, 1000, p1.Cash)
	assert.Empty(t, prompter.Lines)
}

func TestNewGamePanicsWithoutRNG(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewGame(nil, DefaultRules(), nil) })
}
