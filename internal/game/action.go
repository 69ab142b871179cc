package game

import (
	"slices"
	"strings"
)

// Action is a decision a participant can make on a hand
type Action int

const (
	Hit Action = iota
	Stand
	DoubleDown
	Split
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case DoubleDown:
		return "double down"
	case Split:
		return "split"
	default:
		return "unknown"
	}
}

// Aliases returns the inputs accepted for the action, shortest first
func (a Action) Aliases() []string {
	switch a {
	case Hit:
		return []string{"h", "hit"}
	case Stand:
		return []string{"st", "stand"}
	case DoubleDown:
		return []string{"dd", "double down", "double"}
	case Split:
		return []string{"sp", "split"}
	default:
		return nil
	}
}

// ParseAction maps user input to an action, ignoring case and surrounding
// whitespace
func ParseAction(input string) (Action, bool) {
	input = strings.Join(strings.Fields(strings.ToLower(input)), " ")
	for _, a := range []Action{Hit, Stand, DoubleDown, Split} {
		if slices.Contains(a.Aliases(), input) {
			return a, true
		}
	}
	return 0, false
}
