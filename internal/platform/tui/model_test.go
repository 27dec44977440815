package tui

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dotty/internal/engine"
	"github.com/vovakirdan/dotty/internal/ghostty"
	"github.com/vovakirdan/dotty/internal/ghostty/ghosttytest"
	"github.com/vovakirdan/dotty/internal/platform"
	"github.com/vovakirdan/dotty/internal/surface"
	"github.com/vovakirdan/dotty/internal/tick"
)

type harness struct {
	fake   *ghosttytest.Fake
	timer  *Timer
	ticker *tick.Scheduler
	model  Model
}

func newHarness(handle uintptr) *harness {
	h := &harness{fake: ghosttytest.New(), timer: NewTimer()}
	mgr := engine.NewManager(h.fake)
	h.ticker = tick.NewScheduler(mgr, h.timer, 0)
	widget := NewWidget(handle, 2)
	ctrl := surface.New(widget, mgr, h.ticker, surface.NewStrategy(platform.MacOS))
	h.model = NewModel(ctrl, h.ticker, h.timer, widget, WithCellSize(CellSize{Width: 10, Height: 20}))
	return h
}

func (h *harness) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := h.model.Update(msg)
	m, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	h.model = m
	return cmd
}

func TestInitAttachesAndFocuses(t *testing.T) {
	h := newHarness(0xcafe)

	cmd := h.model.Init()
	if cmd == nil {
		t.Error("Init() should start the frame timer")
	}

	ctrl := h.model.Controller()
	if ctrl.State() != surface.Attached {
		t.Fatalf("State() = %v, expected attached", ctrl.State())
	}
	if !h.fake.Focus[ctrl.Surface()] {
		t.Error("catcher focus on start did not reach the surface")
	}
	if !h.timer.Running() {
		t.Error("timer not started by the first registration")
	}
	if h.timer.Cmd() != nil {
		t.Error("timer armed twice")
	}
}

func TestTickDrawsSurface(t *testing.T) {
	h := newHarness(0xcafe)
	h.model.Init()
	h.fake.Reset()

	if cmd := h.send(t, TickMsg{}); cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	s := h.model.Controller().Surface()
	want := []string{"app_tick", fmt.Sprintf("surface_draw %d", s)}
	if !reflect.DeepEqual(h.fake.Calls, want) {
		t.Errorf("calls = %v, expected %v", h.fake.Calls, want)
	}
	if h.ticker.Fires() != 1 {
		t.Errorf("Fires() = %d", h.ticker.Fires())
	}
}

func TestKeyDispatch(t *testing.T) {
	h := newHarness(0xcafe)
	h.model.Init()

	h.send(t, runes("a"))

	if len(h.fake.Keys) != 2 {
		t.Fatalf("keys = %d, expected press and release", len(h.fake.Keys))
	}
	if h.fake.Keys[0].Action != ghostty.ActionPress || h.fake.Keys[1].Action != ghostty.ActionRelease {
		t.Errorf("actions = %v, %v", h.fake.Keys[0].Action, h.fake.Keys[1].Action)
	}
	if h.fake.Keys[0].Keycode != 0x00 {
		t.Errorf("keycode = %#x, expected 0x00", h.fake.Keys[0].Keycode)
	}
	if len(h.fake.Texts) != 1 || string(h.fake.Texts[0]) != "a" {
		t.Errorf("texts = %q", h.fake.Texts)
	}
}

func TestConsumedKeySuppressesText(t *testing.T) {
	h := newHarness(0xcafe)
	h.fake.Consume = ghosttytest.ConsumeAll
	h.model.Init()

	h.send(t, runes("a"))

	if len(h.fake.Texts) != 0 {
		t.Errorf("text forwarded after a consumed key: %q", h.fake.Texts)
	}
	if len(h.fake.Keys) != 2 {
		t.Errorf("keys = %d, expected press and release", len(h.fake.Keys))
	}
}

func TestTextOnlyStroke(t *testing.T) {
	h := newHarness(0xcafe)
	h.model.Init()

	h.send(t, runes("é"))

	if len(h.fake.Keys) != 0 {
		t.Errorf("keys = %d, expected none", len(h.fake.Keys))
	}
	if len(h.fake.Texts) != 1 || len(h.fake.Texts[0]) != 2 {
		t.Errorf("texts = %q", h.fake.Texts)
	}
}

func TestFocusAndBlur(t *testing.T) {
	h := newHarness(0xcafe)
	h.model.Init()
	s := h.model.Controller().Surface()

	h.send(t, tea.BlurMsg{})
	if h.fake.Focus[s] {
		t.Error("blur not forwarded")
	}

	h.send(t, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !h.fake.Focus[s] {
		t.Error("pointer press did not focus the surface")
	}

	h.send(t, tea.BlurMsg{})
	h.send(t, tea.FocusMsg{})
	if !h.fake.Focus[s] {
		t.Error("focus not forwarded")
	}
}

func TestPointerPressFocusesOnce(t *testing.T) {
	h := newHarness(0xcafe)
	h.model.Init()
	s := h.model.Controller().Surface()
	h.send(t, tea.BlurMsg{})

	h.fake.Reset()
	h.send(t, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	want := fmt.Sprintf("surface_set_focus %d true", s)
	if n := h.fake.Count(want); n != 1 {
		t.Errorf("%q sent %d times, expected 1 (calls %v)", want, n, h.fake.Calls)
	}
}

func TestScaleChangesReachSurface(t *testing.T) {
	h := newHarness(0xcafe)
	h.model.Init()
	s := h.model.Controller().Surface()

	h.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("="), Alt: true})
	if h.fake.Scales[s] != [2]float64{2.25, 2.25} {
		t.Errorf("scale after alt+= = %v, expected 2.25", h.fake.Scales[s])
	}
	if len(h.fake.Keys) != 0 || len(h.fake.Texts) != 0 {
		t.Error("scale shortcut reached the terminal")
	}

	h.send(t, ScaleMsg{Scale: 1.5})
	if h.fake.Scales[s] != [2]float64{1.5, 1.5} {
		t.Errorf("scale after ScaleMsg = %v, expected 1.5", h.fake.Scales[s])
	}

	h.send(t, tea.KeyMsg{Type: tea.KeyCtrlR})
	cfgs := h.fake.SurfaceConfigs
	if got := cfgs[len(cfgs)-1].ScaleFactor; got != 1.5 {
		t.Errorf("reattached scale factor = %v, expected 1.5", got)
	}
}

func TestScaleDownClamps(t *testing.T) {
	h := newHarness(0xcafe)
	h.model.Init()
	s := h.model.Controller().Surface()

	h.send(t, ScaleMsg{Scale: 0.25})
	h.fake.Reset()
	h.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-"), Alt: true})
	if n := len(h.fake.Calls); n != 0 {
		t.Errorf("scale below the minimum reached the engine: %v", h.fake.Calls)
	}
	if h.fake.Scales[s] != [2]float64{0.25, 0.25} {
		t.Errorf("scale = %v, expected 0.25", h.fake.Scales[s])
	}
}

func TestResizeForwardsPixels(t *testing.T) {
	h := newHarness(0xcafe)
	h.model.Init()

	h.send(t, tea.WindowSizeMsg{Width: 80, Height: 24})

	s := h.model.Controller().Surface()
	if got := h.fake.Sizes[s]; got != [2]uint32{800, 480} {
		t.Errorf("size = %v, expected [800 480]", got)
	}
}

func TestReattach(t *testing.T) {
	h := newHarness(0xcafe)
	h.model.Init()
	first := h.model.Controller().Surface()

	h.send(t, tea.KeyMsg{Type: tea.KeyCtrlR})

	ctrl := h.model.Controller()
	if ctrl.State() != surface.Attached || ctrl.Surface() == first {
		t.Errorf("after reattach: state %v surface %d", ctrl.State(), ctrl.Surface())
	}
	if h.fake.Live(first) || h.fake.LiveCount() != 1 {
		t.Error("old surface leaked")
	}
	if len(h.fake.Faults) != 0 {
		t.Errorf("faults: %v", h.fake.Faults)
	}
}

func TestQuitDetaches(t *testing.T) {
	h := newHarness(0xcafe)
	h.model.Init()

	if cmd := h.send(t, tea.KeyMsg{Type: tea.KeyCtrlQ}); cmd == nil {
		t.Fatal("quit should return a command")
	}
	if h.model.Controller().State() != surface.Detached || h.fake.LiveCount() != 0 {
		t.Error("quit did not detach the surface")
	}
	if h.model.View() != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestDegradedView(t *testing.T) {
	h := newHarness(0)
	h.model.Init()

	if !h.model.Controller().Degraded() {
		t.Fatal("zero handle should degrade the widget")
	}
	if v := h.model.View(); !strings.Contains(v, "Terminal unavailable") {
		t.Errorf("degraded view missing notice:\n%s", v)
	}

	h.fake.Reset()
	h.send(t, runes("a"))
	h.send(t, TickMsg{})
	if len(h.fake.Calls) != 0 {
		t.Errorf("degraded widget reached the engine: %v", h.fake.Calls)
	}
}

func TestAttachedView(t *testing.T) {
	h := newHarness(0xcafe)
	h.model.Init()
	h.send(t, tea.WindowSizeMsg{Width: 100, Height: 30})

	v := h.model.View()
	for _, want := range []string{"attached", "0xcafe", "focused"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q:\n%s", want, v)
		}
	}
}
