// Package console renders the blackjack table to a terminal and reads the
// players' input.
package console

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/blackjack/internal/game"
)

// Console is a game.Announcer writing to a terminal. It pauses either by
// asking the player to press enter or, without a prompter, on a pacer.
type Console struct {
	out      io.Writer
	renderer *Renderer
	screen   *Screen
	prompter game.Prompter
	pacer    *Pacer
}

// Option configures a Console
type Option func(*Console)

// WithPrompter makes Pause wait for the player to press enter
func WithPrompter(p game.Prompter) Option {
	return func(c *Console) { c.prompter = p }
}

// WithPacer makes Pause wait on the pacer when there is no prompter
func WithPacer(p *Pacer) Option {
	return func(c *Console) { c.pacer = p }
}

// WithClearScreen clears the terminal before every table redraw
func WithClearScreen(enabled bool) Option {
	return func(c *Console) { c.screen = NewScreen(c.out, enabled) }
}

// WithRenderer overrides the renderer, mostly to force a colour profile
func WithRenderer(r *Renderer) Option {
	return func(c *Console) { c.renderer = r }
}

// New creates a console writing to out
func New(out io.Writer, opts ...Option) *Console {
	c := &Console{
		out:      out,
		renderer: NewRenderer(lipgloss.NewRenderer(out)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ game.Announcer = (*Console)(nil)

// Announce redraws the table
func (c *Console) Announce(s game.Snapshot) {
	c.screen.Clear()
	fmt.Fprintln(c.out, c.renderer.Snapshot(s))
}

// Notify prints one line for the event, if it has anything to say
func (c *Console) Notify(e game.Event) {
	if line := c.renderer.Event(e); line != "" {
		fmt.Fprintln(c.out, line)
	}
}

// Pause lets the player catch up before play continues
func (c *Console) Pause(ctx context.Context) error {
	if c.prompter != nil {
		_, err := c.prompter.RequestLine(ctx, continuePrompt)
		return err
	}
	if c.pacer != nil {
		return c.pacer.Wait(ctx)
	}
	return ctx.Err()
}
