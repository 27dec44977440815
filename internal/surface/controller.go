// Package surface binds one ghostty surface to one host widget. A
// Controller creates the surface when the widget is attached to the
// toolkit's visual tree, destroys it on detach, and forwards focus, key,
// text and size changes in between.
package surface

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dotty/internal/engine"
	"github.com/vovakirdan/dotty/internal/ghostty"
	"github.com/vovakirdan/dotty/internal/host"
	"github.com/vovakirdan/dotty/internal/input"
	"github.com/vovakirdan/dotty/internal/tick"
)

// State is the controller's lifecycle state.
type State int

const (
	Detached State = iota
	Attaching
	Attached
	Detaching
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Detached:
		return "detached"
	case Attaching:
		return "attaching"
	case Attached:
		return "attached"
	case Detaching:
		return "detaching"
	default:
		return "unknown"
	}
}

var (
	// ErrAttached is returned by Attach when a surface already exists or
	// an attach or detach is in progress.
	ErrAttached = errors.New("surface: already attached")
	// ErrNoSurface is returned when the engine refuses to create a surface.
	ErrNoSurface = errors.New("surface: engine returned no surface")
)

// Controller owns one surface. All methods must be called on the host UI
// thread.
type Controller struct {
	widget   host.Widget
	engine   *engine.Manager
	ticker   *tick.Scheduler
	strategy Strategy
	settings Settings
	journal  Journal
	logger   *log.Logger
	now      func() time.Time

	state   State
	surface ghostty.Surface
	err     error
	focused bool
	session int64
	stats   Stats
}

// Option configures a Controller.
type Option func(*Controller)

// WithSettings sets surface overrides.
func WithSettings(s Settings) Option {
	return func(c *Controller) { c.settings = s }
}

// WithJournal records every attach and detach.
func WithJournal(j Journal) Option {
	return func(c *Controller) { c.journal = j }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New creates a detached controller for widget.
func New(widget host.Widget, mgr *engine.Manager, ticker *tick.Scheduler, strategy Strategy, opts ...Option) *Controller {
	c := &Controller{
		widget:   widget,
		engine:   mgr,
		ticker:   ticker,
		strategy: strategy,
		logger:   log.New(io.Discard),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// Surface returns the live surface handle, or 0.
func (c *Controller) Surface() ghostty.Surface { return c.surface }

// Err returns why the last attach failed. While it is set the widget has
// no terminal and the host shows a degraded area instead.
func (c *Controller) Err() error { return c.err }

// Degraded reports whether the last attach failed.
func (c *Controller) Degraded() bool { return c.err != nil }

// Stats returns the input counters of the current attachment.
func (c *Controller) Stats() Stats { return c.stats }

// Focused reports the last focus state received from the toolkit.
func (c *Controller) Focused() bool { return c.focused }

// Attach creates the surface for the widget. On failure the controller
// stays Detached, Err reports the cause, and no engine call is made for
// the widget until a later Attach succeeds.
func (c *Controller) Attach() error {
	if c.state != Detached {
		return ErrAttached
	}
	c.state = Attaching
	c.err = nil
	c.stats = Stats{}

	sess, err := c.create()
	sess.AttachedAt = c.now()
	if err != nil {
		c.state = Detached
		c.err = err
		sess.Err = err
		c.logger.Error("surface attach failed", "error", err)
		c.record(sess)
		return err
	}

	c.state = Attached
	c.logger.Info("surface attached",
		"surface", fmt.Sprintf("%#x", uintptr(c.surface)),
		"platform", sess.Platform,
		"scale", sess.Scale)
	c.session = c.record(sess)

	if c.focused {
		c.engine.Binding().SurfaceSetFocus(c.surface, true)
	}
	return nil
}

func (c *Controller) create() (Session, error) {
	sess := Session{OS: c.strategy.OS.String()}

	if err := c.engine.EnsureInitialized(); err != nil {
		return sess, fmt.Errorf("surface: %w", err)
	}

	scale := c.widget.RenderScaling()
	if scale <= 0 {
		scale = 1
	}
	sess.Scale = scale

	handle := c.widget.NativeHandle()
	sess.Handle = handle
	view, err := c.strategy.Bind(handle)
	if err != nil {
		return sess, fmt.Errorf("surface: %w", err)
	}
	sess.Platform = view.Tag()

	b := c.engine.Binding()
	cfg := b.SurfaceConfigNew()
	cfg.SetView(view)
	cfg.ScaleFactor = scale
	c.settings.apply(&cfg)

	s := b.SurfaceNew(c.engine.App(), &cfg)
	if s == 0 {
		return sess, ErrNoSurface
	}

	c.surface = s
	c.ticker.Register(s)
	return sess, nil
}

func (c *Controller) record(sess Session) int64 {
	if c.journal == nil {
		return 0
	}
	id, err := c.journal.SurfaceAttached(sess)
	if err != nil {
		c.logger.Warn("could not record surface session", "error", err)
		return 0
	}
	return id
}

// Detach destroys the surface. The surface leaves the tick scheduler
// before it is freed, so no draw can reach a freed handle. Detaching a
// controller without a surface only clears a previous attach error.
func (c *Controller) Detach() {
	if c.state != Attached {
		if c.state == Detached {
			c.err = nil
		}
		return
	}
	c.state = Detaching

	s := c.surface
	c.surface = 0
	c.ticker.Deregister(s)
	if s != 0 {
		c.engine.Binding().SurfaceFree(s)
	}

	c.state = Detached
	c.logger.Info("surface detached", "surface", fmt.Sprintf("%#x", uintptr(s)))

	if c.journal != nil && c.session != 0 {
		c.stats.DetachedAt = c.now()
		if err := c.journal.SurfaceDetached(c.session, c.stats); err != nil {
			c.logger.Warn("could not record surface detach", "error", err)
		}
	}
	c.session = 0
}

// live returns the surface when engine calls against it are allowed.
func (c *Controller) live() ghostty.Surface {
	if c.state != Attached {
		return 0
	}
	return c.surface
}

// SetFocus forwards the toolkit's got-focus or lost-focus. A repeat of the
// current state is not forwarded.
func (c *Controller) SetFocus(focused bool) {
	if focused == c.focused {
		return
	}
	c.focused = focused
	c.logger.Debug("focus changed", "focused", focused)
	if s := c.live(); s != 0 {
		c.engine.Binding().SurfaceSetFocus(s, focused)
	}
}

// RequestFocus asks the toolkit to focus the widget. The toolkit's
// got-focus notification then arrives through SetFocus.
func (c *Controller) RequestFocus() {
	c.logger.Debug("pointer pressed, requesting focus")
	c.widget.Focus()
}

// HandleKeyDown forwards a key press. The event is marked handled when the
// engine consumed the key.
func (c *Controller) HandleKeyDown(e *host.KeyEventArgs) {
	c.key(e, c.strategy.Keys.KeyDown(e))
}

// HandleKeyUp forwards a key release.
func (c *Controller) HandleKeyUp(e *host.KeyEventArgs) {
	c.key(e, c.strategy.Keys.KeyUp(e))
}

func (c *Controller) key(e *host.KeyEventArgs, key ghostty.InputKey) {
	s := c.live()
	if s == 0 {
		return
	}
	consumed := c.engine.Binding().SurfaceKey(s, key)
	c.stats.KeysForwarded++
	if consumed {
		c.stats.KeysConsumed++
	}
	c.logger.Debug("key",
		"key", e.Key,
		"action", key.Action,
		"keycode", fmt.Sprintf("%#x", key.Keycode),
		"mods", key.Mods,
		"consumed", consumed)
	e.Handled = consumed
}

// HandleTextInput forwards committed text. Empty text is dropped.
func (c *Controller) HandleTextInput(e *host.TextInputEventArgs) {
	s := c.live()
	if s == 0 {
		return
	}
	text, ok := input.EncodeText(e.Text)
	if !ok {
		return
	}
	c.engine.Binding().SurfaceText(s, text)
	c.stats.TextBytes += len(text)
	c.logger.Debug("text input", "text", e.Text)
	e.Handled = true
}

// Resize forwards the widget's size in pixels.
func (c *Controller) Resize(width, height uint32) {
	if s := c.live(); s != 0 {
		c.engine.Binding().SurfaceSetSize(s, width, height)
	}
}

// SetContentScale forwards a display scale change.
func (c *Controller) SetContentScale(x, y float64) {
	if s := c.live(); s != 0 {
		c.engine.Binding().SurfaceSetContentScale(s, x, y)
	}
}
