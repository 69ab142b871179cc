package console

import (
	"io"

	"github.com/muesli/termenv"
)

// Screen clears the terminal between table redraws
type Screen struct {
	output  *termenv.Output
	enabled bool
}

// NewScreen wraps w. A disabled screen never clears.
func NewScreen(w io.Writer, enabled bool) *Screen {
	return &Screen{output: termenv.NewOutput(w), enabled: enabled}
}

// Clear wipes the screen and homes the cursor
func (s *Screen) Clear() {
	if s == nil || !s.enabled {
		return
	}
	s.output.ClearScreen()
}
