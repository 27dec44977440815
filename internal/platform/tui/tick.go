// Package tui provides the Bubble Tea host for dotty. It plays the part of
// the host toolkit: it owns the UI thread, turns terminal key, focus,
// mouse and resize messages into host events, and drives the engine's
// frame timer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dotty/internal/tick"
)

// TickMsg is sent to trigger an engine frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Timer is the UI-thread timer behind the tick scheduler. Start only arms
// it; the model picks up the first tick command with Cmd and re-arms on
// every TickMsg, so fire always runs inside Update.
type Timer struct {
	interval time.Duration
	fire     func()
	armed    bool
}

var _ tick.Timer = (*Timer)(nil)

// NewTimer returns an idle timer.
func NewTimer() *Timer {
	return &Timer{}
}

// Start implements tick.Timer.
func (t *Timer) Start(interval time.Duration, fire func()) {
	t.interval = interval
	t.fire = fire
	t.armed = true
}

// Running reports whether Start has been called.
func (t *Timer) Running() bool { return t.fire != nil }

// Cmd returns the first tick command after Start, and nil otherwise.
func (t *Timer) Cmd() tea.Cmd {
	if !t.armed {
		return nil
	}
	t.armed = false
	return tickCmd(t.interval)
}

// Fire runs one frame and schedules the next.
func (t *Timer) Fire() tea.Cmd {
	if t.fire == nil {
		return nil
	}
	t.fire()
	return tickCmd(t.interval)
}
