package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dotty/internal/host"
	"github.com/vovakirdan/dotty/internal/router"
	"github.com/vovakirdan/dotty/internal/surface"
	"github.com/vovakirdan/dotty/internal/tick"
)

// CellSize converts terminal cells to pixels for surface_set_size.
type CellSize struct {
	Width  int
	Height int
}

// ScaleMsg reports a new display scale for the widget, as after the host
// window moved to another monitor.
type ScaleMsg struct {
	Scale float64
}

const (
	scaleStep = 0.25
	minScale  = 0.25
)

// Model is the Bubble Tea model hosting one terminal widget.
type Model struct {
	ctrl    *surface.Controller
	catcher *router.InputCatcher
	ticker  *tick.Scheduler
	timer   *Timer
	widget  *Widget
	cell    CellSize
	logger  *log.Logger

	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithCellSize sets the pixel size of one terminal cell.
func WithCellSize(c CellSize) Option {
	return func(m *Model) { m.cell = c }
}

// NewModel wires a controller to the Bubble Tea host. The timer must be
// the one the ticker was created with.
func NewModel(ctrl *surface.Controller, ticker *tick.Scheduler, timer *Timer, widget *Widget, opts ...Option) Model {
	m := Model{
		ctrl:   ctrl,
		ticker: ticker,
		timer:  timer,
		widget: widget,
		cell:   CellSize{Width: 8, Height: 16},
		logger: log.New(io.Discard),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.catcher = router.NewInputCatcher(ctrl, router.WithLogger(m.logger))
	widget.OnGotFocus(func() { ctrl.SetFocus(true) })
	return m
}

// Controller returns the surface controller.
func (m Model) Controller() *surface.Controller { return m.ctrl }

// Init attaches the surface and gives the input catcher keyboard focus,
// as a window does when it opens.
func (m Model) Init() tea.Cmd {
	if err := m.ctrl.Attach(); err != nil {
		m.logger.Warn("terminal unavailable", "error", err)
	}
	m.catcher.Focus()
	return m.timer.Cmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			m.catcher.PointerPressed(&host.PointerPressedEventArgs{X: msg.X, Y: msg.Y})
		}
		return m, nil

	case tea.FocusMsg:
		m.catcher.GotFocus()
		return m, nil

	case tea.BlurMsg:
		m.catcher.LostFocus()
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case ScaleMsg:
		m.setScale(msg.Scale)
		return m, nil

	case TickMsg:
		return m, m.timer.Fire()
	}

	return m, nil
}

// handleKey processes keyboard input. Host shortcuts win; everything
// else goes through the catcher as key down, text, key up.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.ctrl.Detach()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reattach):
		m.ctrl.Detach()
		if err := m.ctrl.Attach(); err != nil {
			m.logger.Warn("reattach failed", "error", err)
		}
		if m.width > 0 {
			m.resizeSurface()
		}
		return m, m.timer.Cmd()

	case key.Matches(msg, m.keys.ScaleUp):
		m.setScale(m.widget.RenderScaling() + scaleStep)
		return m, nil

	case key.Matches(msg, m.keys.ScaleDown):
		m.setScale(m.widget.RenderScaling() - scaleStep)
		return m, nil
	}

	stroke, ok := Stroke(msg)
	if !ok {
		return m, nil
	}
	m.dispatch(stroke)
	return m, nil
}

// dispatch delivers one stroke. Text is suppressed when the engine
// consumed the key press, so the character is not inserted twice.
func (m Model) dispatch(s KeyStroke) {
	consumed := false
	if s.Key != host.KeyNone {
		down := &host.KeyEventArgs{Key: s.Key, Modifiers: s.Modifiers}
		m.catcher.KeyDown(down)
		consumed = down.Handled
	}

	if s.Text != "" && !consumed {
		m.catcher.TextInput(&host.TextInputEventArgs{Text: s.Text})
	}

	if s.Key != host.KeyNone {
		m.catcher.KeyUp(&host.KeyEventArgs{Key: s.Key, Modifiers: s.Modifiers})
	}
}

// setScale records the widget's display scale and forwards it to the
// surface. A later reattach creates the surface at the same scale.
func (m Model) setScale(scale float64) {
	if scale < minScale {
		scale = minScale
	}
	if scale == m.widget.RenderScaling() {
		return
	}
	m.widget.SetScale(scale)
	m.ctrl.SetContentScale(scale, scale)
	m.logger.Info("display scale changed", "scale", scale)
}

// handleResize forwards the window size in pixels.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.resizeSurface()
	return m, nil
}

func (m Model) resizeSurface() {
	w := m.width * m.cell.Width
	h := m.height * m.cell.Height
	if w <= 0 || h <= 0 {
		return
	}
	m.ctrl.Resize(uint32(w), uint32(h))
}

// View renders the status bar, the terminal area and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	focus := "blurred"
	if m.ctrl.Focused() {
		focus = "focused"
	}
	b.WriteString(renderStatusBar(m.width,
		renderState(m.ctrl.State()),
		fmt.Sprintf("surface %#x", uintptr(m.ctrl.Surface())),
		focus,
		fmt.Sprintf("scale %.2g", m.widget.RenderScaling()),
	))
	b.WriteString("\n\n")

	if m.ctrl.Degraded() {
		b.WriteString(renderDegraded(m.ctrl.Err(), m.width))
	} else {
		b.WriteString(renderAttached(m.widget.NativeHandle(), m.ctrl.Stats(), m.ticker.Fires(), m.width))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program with the given model. The surface is
// detached when the program exits for any reason.
func Run(m Model) error {
	defer m.ctrl.Detach()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer presses focus the terminal
		tea.WithReportFocus(),     // Window focus follows the terminal emulator
	)

	_, err := p.Run()
	return err
}
