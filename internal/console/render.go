package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

const (
	hiddenCard = "<hidden card>"
	tableWidth = 56
)

// Renderer turns snapshots and events into text
type Renderer struct {
	styles Styles
}

// NewRenderer creates a renderer drawing with the given lipgloss renderer's
// colour profile
func NewRenderer(r *lipgloss.Renderer) *Renderer {
	return &Renderer{styles: NewStyles(r)}
}

// Snapshot draws the table
func (r *Renderer) Snapshot(s game.Snapshot) string {
	var sb strings.Builder

	heading := s.Heading
	if heading == "" {
		heading = fmt.Sprintf("Round %d", s.Round)
	}
	sb.WriteString(r.styles.Header.Render(" " + heading + " "))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", tableWidth))
	sb.WriteString("\n")

	for i, p := range s.Participants {
		if i > 0 {
			sb.WriteString("|\n")
		}
		r.participant(&sb, p, s)
	}

	sb.WriteString(strings.Repeat("-", tableWidth))
	return sb.String()
}

func (r *Renderer) participant(sb *strings.Builder, p game.ParticipantView, s game.Snapshot) {
	if p.IsDealer {
		fmt.Fprintf(sb, "| %s\n", r.styles.Dealer.Render(p.Name))
	} else {
		fmt.Fprintf(sb, "| %s | %s\n", r.styles.Player.Render(p.Name), r.styles.Cash.Render(fmt.Sprintf("$%d", p.Cash)))
	}

	for i, h := range p.Hands {
		hide := p.IsDealer && s.HideDealerHole
		var parts []string
		if s.ShowBets && !p.IsDealer {
			parts = append(parts, fmt.Sprintf("bet: $%d", h.Bet))
		}
		if h.Busted {
			parts = append(parts, r.styles.Busted.Render("BUSTED"))
		} else if h.Blackjack {
			parts = append(parts, r.styles.Blackjack.Render("BLACKJACK"))
		}
		if s.ShowValues && !hide {
			parts = append(parts, fmt.Sprintf("value: %d", h.Value))
		}
		parts = append(parts, r.cards(h.Cards, hide))

		line := " \\ " + strings.Join(parts, " | ")
		if i == p.Current && len(p.Hands) > 1 {
			line += " " + r.styles.Current.Render("<- current")
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}

func (r *Renderer) cards(cards []deck.Card, hideHole bool) string {
	if len(cards) == 0 {
		return r.styles.Info.Render("(no cards)")
	}
	out := make([]string, len(cards))
	for i, c := range cards {
		if hideHole && i > 0 {
			out[i] = r.styles.Hidden.Render(hiddenCard)
			continue
		}
		out[i] = r.Card(c)
	}
	return strings.Join(out, ", ")
}

// Card renders a single card in its suit colour
func (r *Renderer) Card(c deck.Card) string {
	if c.IsRed() {
		return r.styles.RedCard.Render(c.Short())
	}
	return r.styles.BlackCard.Render(c.Short())
}

// Event describes an event in one line. Events with nothing worth saying
// render as the empty string.
func (r *Renderer) Event(e game.Event) string {
	switch e.Type {
	case game.EventRoundStart:
		return r.styles.Info.Render(fmt.Sprintf("Round %d begins.", e.Round))
	case game.EventBetPlaced:
		return fmt.Sprintf("%s bets $%d.", e.Participant, e.Amount)
	case game.EventTurnStart:
		return r.styles.Info.Render(fmt.Sprintf("It is %s's turn.", e.Participant))
	case game.EventCardDrawn:
		return fmt.Sprintf("%s drawn.", e.Card)
	case game.EventBusted:
		return r.styles.Error.Render(fmt.Sprintf("%s busts with %d!", e.Participant, e.Amount))
	case game.EventBlackjack:
		return r.styles.Blackjack.Render(fmt.Sprintf("%s has blackjack!", e.Participant))
	case game.EventStood:
		return fmt.Sprintf("%s stands on %d.", e.Participant, e.Amount)
	case game.EventDoubled:
		return r.styles.Warning.Render(fmt.Sprintf("%s doubles down! Bet is now $%d.", e.Participant, e.Amount))
	case game.EventSplit:
		return r.styles.Warning.Render(fmt.Sprintf("%s splits! Each hand carries $%d.", e.Participant, e.Amount))
	case game.EventInsufficientFunds:
		return r.styles.Error.Render(fmt.Sprintf("Insufficient funds: you need $%d more.", e.Amount))
	case game.EventDealerBlackjack:
		return r.styles.Blackjack.Render("Dealer has blackjack!")
	case game.EventSettled:
		if e.Settlement == nil {
			return ""
		}
		return r.settlement(*e.Settlement)
	case game.EventEliminated:
		return r.styles.Error.Render(fmt.Sprintf("Removing %s due to having $0 left.", e.Participant))
	default:
		return ""
	}
}

func (r *Renderer) settlement(s game.Settlement) string {
	label := fmt.Sprintf("%s hand %d: %s", s.Participant, s.HandIndex+1, s.Outcome)
	net := s.Net()
	switch {
	case net > 0:
		return r.styles.Success.Render(fmt.Sprintf("%s (+$%d)", label, net))
	case net < 0:
		return r.styles.Error.Render(fmt.Sprintf("%s (-$%d)", label, -net))
	default:
		return fmt.Sprintf("%s ($0)", label)
	}
}
