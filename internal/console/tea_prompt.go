package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TeaPrompter reads each line with a short-lived bubbletea program so the
// player gets line editing and a styled prompt
type TeaPrompter struct {
	in     io.Reader
	out    io.Writer
	styles Styles
}

// NewTeaPrompter creates a prompter attached to the given terminal streams
func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{
		in:     in,
		out:    out,
		styles: NewStyles(lipgloss.NewRenderer(out)),
	}
}

// RequestLine shows prompt and returns what the player typed. Ctrl+C or Esc
// return ErrInterrupted.
func (p *TeaPrompter) RequestLine(ctx context.Context, prompt string) (string, error) {
	program := tea.NewProgram(
		newPromptModel(prompt, p.styles),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if errors.Is(err, tea.ErrProgramKilled) {
			return "", ErrInterrupted
		}
		return "", fmt.Errorf("running prompt: %w", err)
	}

	m, ok := final.(promptModel)
	if !ok {
		return "", fmt.Errorf("unexpected prompt model %T", final)
	}
	if m.cancelled {
		return "", ErrInterrupted
	}
	return m.Value(), nil
}

// promptModel is a one-line text input that quits on enter
type promptModel struct {
	prompt    string
	input     textinput.Model
	styles    Styles
	done      bool
	cancelled bool
}

func newPromptModel(prompt string, styles Styles) promptModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = styles.Prompt
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	return promptModel{
		prompt: prompt,
		input:  ti,
		styles: styles,
	}
}

// Value returns the text entered so far
func (m promptModel) Value() string {
	return m.input.Value()
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	prompt := strings.TrimRight(m.prompt, " ")
	if m.done || m.cancelled {
		return prompt + " " + m.input.Value() + "\n"
	}
	return prompt + "\n" + m.input.View()
}
