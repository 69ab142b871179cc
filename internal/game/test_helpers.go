package game

import (
	"context"
	"errors"
	"io"
	"sync"
)

// ErrScriptExhausted is returned by scripted collaborators that run out of input
var ErrScriptExhausted = errors.New("script exhausted")

// ScriptedPolicy replays fixed bets and actions. Useful for tests and replays.
type ScriptedPolicy struct {
	Bets    []int
	Actions []Action

	// Offered records the valid actions passed to every decision
	Offered [][]Action
}

// NewScriptedPolicy creates a policy that bets once and then plays actions in order
func NewScriptedPolicy(bet int, actions ...Action) *ScriptedPolicy {
	return &ScriptedPolicy{Bets: []int{bet}, Actions: actions}
}

// InitialBet returns the next scripted bet
func (s *ScriptedPolicy) InitialBet(context.Context, string, int) (int, error) {
	if len(s.Bets) == 0 {
		return 0, ErrScriptExhausted
	}
	bet := s.Bets[0]
	s.Bets = s.Bets[1:]
	return bet, nil
}

// DecideAction returns the next scripted action
func (s *ScriptedPolicy) DecideAction(_ context.Context, _ TurnState, valid []Action) (Action, error) {
	s.Offered = append(s.Offered, valid)
	if len(s.Actions) == 0 {
		return 0, ErrScriptExhausted
	}
	a := s.Actions[0]
	s.Actions = s.Actions[1:]
	return a, nil
}

// ScriptedPrompter answers prompts with fixed lines and returns io.EOF once
// they run out
type ScriptedPrompter struct {
	Lines   []string
	Prompts []string
}

// NewScriptedPrompter creates a prompter replaying lines
func NewScriptedPrompter(lines ...string) *ScriptedPrompter {
	return &ScriptedPrompter{Lines: lines}
}

// RequestLine records the prompt and returns the next line
func (s *ScriptedPrompter) RequestLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.Prompts = append(s.Prompts, prompt)
	if len(s.Lines) == 0 {
		return "", io.EOF
	}
	line := s.Lines[0]
	s.Lines = s.Lines[1:]
	return line, nil
}

// RecordingAnnouncer captures everything announced for assertions
type RecordingAnnouncer struct {
	mu        sync.Mutex
	Snapshots []Snapshot
	Events    []Event
	Pauses    int
}

func (r *RecordingAnnouncer) Announce(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Snapshots = append(r.Snapshots, s)
}

func (r *RecordingAnnouncer) Notify(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, e)
}

func (r *RecordingAnnouncer) Pause(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Pauses++
	return ctx.Err()
}

// EventTypes returns the recorded event types in order
func (r *RecordingAnnouncer) EventTypes() []EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]EventType, len(r.Events))
	for i, e := range r.Events {
		types[i] = e.Type
	}
	return types
}
