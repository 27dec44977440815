// Package ghosttytest provides an in-memory ghostty.Binding for tests.
package ghosttytest

import (
	"fmt"

	"github.com/vovakirdan/dotty/internal/ghostty"
)

// Fake records every call it receives, in order, as short strings such as
// "app_tick" or "surface_draw 2". Handles are small integers handed out in
// sequence. Calls against a surface that is not live are recorded in
// Faults instead of being treated as valid.
type Fake struct {
	// InitStatus is returned by Init.
	InitStatus int
	// NullConfig makes ConfigNew return a null handle.
	NullConfig bool
	// NullApp makes AppNew return a null handle.
	NullApp bool
	// NullSurface makes SurfaceNew return a null handle.
	NullSurface bool
	// Consume decides the result of SurfaceKey. Nil consumes nothing.
	Consume func(key ghostty.InputKey) bool

	Calls  []string
	Faults []string

	Runtime        *ghostty.Runtime
	SurfaceConfigs []ghostty.SurfaceConfig
	Keys           []ghostty.InputKey
	Texts          [][]byte
	Focus          map[ghostty.Surface]bool
	Sizes          map[ghostty.Surface][2]uint32
	Scales         map[ghostty.Surface][2]float64

	next        uintptr
	live        map[ghostty.Surface]bool
	freedConfig map[ghostty.Config]bool
}

var _ ghostty.Binding = (*Fake)(nil)

// New returns a fake whose calls all succeed.
func New() *Fake {
	return &Fake{
		Focus:       make(map[ghostty.Surface]bool),
		Sizes:       make(map[ghostty.Surface][2]uint32),
		Scales:      make(map[ghostty.Surface][2]float64),
		live:        make(map[ghostty.Surface]bool),
		freedConfig: make(map[ghostty.Config]bool),
	}
}

func (f *Fake) record(format string, args ...any) {
	f.Calls = append(f.Calls, fmt.Sprintf(format, args...))
}

func (f *Fake) handle() uintptr {
	f.next++
	return f.next
}

func (f *Fake) checkLive(op string, s ghostty.Surface) bool {
	if !f.live[s] {
		f.Faults = append(f.Faults, fmt.Sprintf("%s on dead surface %d", op, s))
		return false
	}
	return true
}

// Live reports whether s has been created and not freed.
func (f *Fake) Live(s ghostty.Surface) bool { return f.live[s] }

// LiveCount returns the number of surfaces not yet freed.
func (f *Fake) LiveCount() int { return len(f.live) }

// ConfigFreed reports whether cfg was released.
func (f *Fake) ConfigFreed(cfg ghostty.Config) bool { return f.freedConfig[cfg] }

// Count returns how many recorded calls equal call.
func (f *Fake) Count(call string) int {
	n := 0
	for _, c := range f.Calls {
		if c == call {
			n++
		}
	}
	return n
}

// Reset forgets the recorded calls but keeps handles and live state.
func (f *Fake) Reset() {
	f.Calls = nil
	f.Faults = nil
}

func (f *Fake) Init(args []string) int {
	f.record("init %d", len(args))
	return f.InitStatus
}

func (f *Fake) ConfigNew() ghostty.Config {
	f.record("config_new")
	if f.NullConfig {
		return 0
	}
	return ghostty.Config(f.handle())
}

func (f *Fake) ConfigFree(cfg ghostty.Config) {
	f.record("config_free %d", cfg)
	if f.freedConfig[cfg] {
		f.Faults = append(f.Faults, fmt.Sprintf("config_free twice on %d", cfg))
	}
	f.freedConfig[cfg] = true
}

func (f *Fake) ConfigLoadDefaultFiles(cfg ghostty.Config) {
	f.record("config_load_default_files %d", cfg)
}

func (f *Fake) ConfigFinalize(cfg ghostty.Config) {
	f.record("config_finalize %d", cfg)
}

func (f *Fake) AppNew(rt *ghostty.Runtime, cfg ghostty.Config) ghostty.App {
	f.record("app_new %d", cfg)
	f.Runtime = rt
	if f.NullApp {
		return 0
	}
	return ghostty.App(f.handle())
}

func (f *Fake) AppTick(app ghostty.App) {
	f.record("app_tick")
}

func (f *Fake) SurfaceConfigNew() ghostty.SurfaceConfig {
	f.record("surface_config_new")
	return ghostty.SurfaceConfig{ScaleFactor: 1, Context: ghostty.ContextWindow}
}

func (f *Fake) SurfaceNew(app ghostty.App, cfg *ghostty.SurfaceConfig) ghostty.Surface {
	f.record("surface_new")
	f.SurfaceConfigs = append(f.SurfaceConfigs, *cfg)
	if f.NullSurface || app == 0 {
		return 0
	}
	s := ghostty.Surface(f.handle())
	f.live[s] = true
	return s
}

func (f *Fake) SurfaceFree(s ghostty.Surface) {
	f.record("surface_free %d", s)
	if f.checkLive("surface_free", s) {
		delete(f.live, s)
	}
}

func (f *Fake) SurfaceSetFocus(s ghostty.Surface, focused bool) {
	f.record("surface_set_focus %d %t", s, focused)
	if f.checkLive("surface_set_focus", s) {
		f.Focus[s] = focused
	}
}

func (f *Fake) SurfaceDraw(s ghostty.Surface) {
	f.record("surface_draw %d", s)
	f.checkLive("surface_draw", s)
}

func (f *Fake) SurfaceSetSize(s ghostty.Surface, width, height uint32) {
	f.record("surface_set_size %d %dx%d", s, width, height)
	if f.checkLive("surface_set_size", s) {
		f.Sizes[s] = [2]uint32{width, height}
	}
}

func (f *Fake) SurfaceSetContentScale(s ghostty.Surface, x, y float64) {
	f.record("surface_set_content_scale %d %g %g", s, x, y)
	if f.checkLive("surface_set_content_scale", s) {
		f.Scales[s] = [2]float64{x, y}
	}
}

func (f *Fake) SurfaceKey(s ghostty.Surface, key ghostty.InputKey) bool {
	f.record("surface_key %d %s %#x", s, key.Action, key.Keycode)
	if !f.checkLive("surface_key", s) {
		return false
	}
	f.Keys = append(f.Keys, key)
	if f.Consume == nil {
		return false
	}
	return f.Consume(key)
}

func (f *Fake) SurfaceText(s ghostty.Surface, text []byte) {
	f.record("surface_text %d %q", s, text)
	if f.checkLive("surface_text", s) {
		f.Texts = append(f.Texts, append([]byte(nil), text...))
	}
}

// ConsumeAll is a Consume func that claims every key.
func ConsumeAll(ghostty.InputKey) bool { return true }
