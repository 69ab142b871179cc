package console

import (
	"context"
	"time"

	"github.com/coder/quartz"
)

// Pacer slows unattended play down so a watcher can follow it
type Pacer struct {
	clock quartz.Clock
	delay time.Duration
}

// NewPacer creates a pacer waiting delay on clock. A zero delay never waits.
func NewPacer(clock quartz.Clock, delay time.Duration) *Pacer {
	return &Pacer{clock: clock, delay: delay}
}

// Wait blocks for the pacer's delay or until ctx is done
func (p *Pacer) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.delay <= 0 {
		return nil
	}

	timer := p.clock.NewTimer(p.delay, "pacer")
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
