// Package router forwards toolkit input from an invisible, focusable
// catcher element to the terminal widget underneath it.
//
// Native child views swallow the host's pointer and keyboard routing, so
// the host places a transparent catcher over the terminal. The catcher
// owns keyboard focus and relays everything it receives to the target.
package router

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dotty/internal/host"
)

// Target is the terminal widget input is relayed to.
type Target interface {
	RequestFocus()
	SetFocus(focused bool)
	HandleKeyDown(e *host.KeyEventArgs)
	HandleKeyUp(e *host.KeyEventArgs)
	HandleTextInput(e *host.TextInputEventArgs)
}

// FocusRequester asks the toolkit to move keyboard focus to the catcher.
type FocusRequester func()

// InputCatcher is the focusable overlay. Its methods are the toolkit's
// event handlers and must run on the UI thread.
type InputCatcher struct {
	target  Target
	focus   FocusRequester
	logger  *log.Logger
	focused bool
}

// Option configures an InputCatcher.
type Option func(*InputCatcher)

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *InputCatcher) { c.logger = l }
}

// WithFocusRequester sets how the catcher takes keyboard focus for itself.
func WithFocusRequester(f FocusRequester) Option {
	return func(c *InputCatcher) { c.focus = f }
}

// NewInputCatcher returns a catcher relaying to target.
func NewInputCatcher(target Target, opts ...Option) *InputCatcher {
	c := &InputCatcher{target: target, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Focused reports whether the catcher holds keyboard focus.
func (c *InputCatcher) Focused() bool { return c.focused }

// Focus takes keyboard focus. Hosts call it once when the window opens so
// typing works without a click first.
func (c *InputCatcher) Focus() {
	if c.focus != nil {
		c.focus()
		return
	}
	c.GotFocus()
}

// PointerPressed handles a press anywhere over the terminal. The catcher
// takes focus and asks the target to do the same.
func (c *InputCatcher) PointerPressed(e *host.PointerPressedEventArgs) {
	c.logger.Debug("pointer pressed", "x", e.X, "y", e.Y)
	c.Focus()
	c.target.RequestFocus()
	e.Handled = true
}

// GotFocus forwards focus to the target.
func (c *InputCatcher) GotFocus() {
	c.focused = true
	c.target.SetFocus(true)
}

// LostFocus forwards blur to the target.
func (c *InputCatcher) LostFocus() {
	c.focused = false
	c.target.SetFocus(false)
}

// KeyDown relays a key press. Handled reflects the target's answer.
func (c *InputCatcher) KeyDown(e *host.KeyEventArgs) {
	c.target.HandleKeyDown(e)
}

// KeyUp relays a key release.
func (c *InputCatcher) KeyUp(e *host.KeyEventArgs) {
	c.target.HandleKeyUp(e)
}

// TextInput relays committed text.
func (c *InputCatcher) TextInput(e *host.TextInputEventArgs) {
	c.target.HandleTextInput(e)
}
