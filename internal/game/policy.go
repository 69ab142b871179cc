package game

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Policy decides bets and actions for a participant. Policies receive
// immutable state and return decisions; they never mutate the game.
type Policy interface {
	// InitialBet returns the wager for the participant's first hand
	InitialBet(ctx context.Context, name string, cash int) (int, error)

	// DecideAction picks one of the valid actions for the hand in play
	DecideAction(ctx context.Context, state TurnState, valid []Action) (Action, error)
}

// DealerPolicy is the house's fixed strategy: never bet, hit until the hand
// reaches StandsOn, then stand.
type DealerPolicy struct {
	StandsOn int
}

// NewDealerPolicy creates a dealer policy standing on the given total
func NewDealerPolicy(standsOn int) DealerPolicy {
	return DealerPolicy{StandsOn: standsOn}
}

// InitialBet is a no-op; the dealer never bets
func (DealerPolicy) InitialBet(context.Context, string, int) (int, error) {
	return 0, nil
}

// DecideAction stands at or above the threshold and hits below it
func (d DealerPolicy) DecideAction(_ context.Context, state TurnState, _ []Action) (Action, error) {
	if state.Hand.Value >= d.StandsOn && !state.Hand.Busted {
		return Stand, nil
	}
	return Hit, nil
}

const (
	invalidActionPrompt = "I can't recognize your input. Try again: "
	betPromptFormat     = "%s, place your bet!\nEnter a number: $"
	rebetPromptFormat   = "You can bet between $1 and $%d: "
)

// InteractivePolicy asks a Prompter for every decision. Invalid input is never
// an error: the player is asked again until the answer is usable.
type InteractivePolicy struct {
	prompter Prompter
}

// NewInteractivePolicy creates a policy reading decisions from prompter
func NewInteractivePolicy(prompter Prompter) *InteractivePolicy {
	return &InteractivePolicy{prompter: prompter}
}

// InitialBet asks for a whole-number wager between 1 and cash
func (p *InteractivePolicy) InitialBet(ctx context.Context, name string, cash int) (int, error) {
	prompt := fmt.Sprintf(betPromptFormat, name)
	for {
		line, err := p.prompter.RequestLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		bet, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && bet >= 1 && bet <= cash {
			return bet, nil
		}
		prompt = fmt.Sprintf(rebetPromptFormat, cash)
	}
}

// DecideAction lists the valid actions and reads one of them
func (p *InteractivePolicy) DecideAction(ctx context.Context, state TurnState, valid []Action) (Action, error) {
	prompt := ActionPrompt(valid)
	for {
		line, err := p.prompter.RequestLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		if action, ok := ParseAction(line); ok && slices.Contains(valid, action) {
			return action, nil
		}
		prompt = invalidActionPrompt
	}
}

// ActionPrompt builds the question listing each valid action and its inputs
func ActionPrompt(valid []Action) string {
	var b strings.Builder
	b.WriteString("What would you like to do?")
	for _, a := range valid {
		aliases := a.Aliases()
		quoted := make([]string, len(aliases))
		for i, alias := range aliases {
			quoted[i] = "'" + alias + "'"
		}
		fmt.Fprintf(&b, "\n| %s: enter %s", a, strings.Join(quoted, " or "))
	}
	b.WriteString("\nEnter your choice: ")
	return b.String()
}
