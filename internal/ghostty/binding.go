// Package ghostty is the foreign-call surface of the libghostty embedding
// API: ABI mirror types, opaque handles, and the Binding interface that the
// rest of dotty talks to. Library is the real implementation; tests use
// ghosttytest.Fake.
package ghostty

// Config is an opaque ghostty_config_t. The zero value is null.
type Config uintptr

// App is an opaque ghostty_app_t. The zero value is null.
type App uintptr

// Surface is an opaque ghostty_surface_t. The zero value is null.
type Surface uintptr

// Binding is the set of libghostty functions the embedding layer uses.
// Implementations must be called from the host UI thread only.
type Binding interface {
	// Init initializes the library. A non-zero status is a failure.
	Init(args []string) int

	ConfigNew() Config
	ConfigFree(cfg Config)
	ConfigLoadDefaultFiles(cfg Config)
	ConfigFinalize(cfg Config)

	// AppNew creates the engine instance. The runtime record must stay
	// valid for as long as the returned app lives.
	AppNew(rt *Runtime, cfg Config) App
	AppTick(app App)

	// SurfaceConfigNew returns a surface config filled with engine defaults.
	SurfaceConfigNew() SurfaceConfig
	SurfaceNew(app App, cfg *SurfaceConfig) Surface
	SurfaceFree(s Surface)
	SurfaceSetFocus(s Surface, focused bool)
	SurfaceDraw(s Surface)
	SurfaceSetSize(s Surface, width, height uint32)
	SurfaceSetContentScale(s Surface, x, y float64)

	// SurfaceKey delivers one key event and reports whether the engine
	// consumed it.
	SurfaceKey(s Surface, key InputKey) bool
	SurfaceText(s Surface, text []byte)
}

// Clipboard identifies which clipboard a request refers to.
type Clipboard int32

const (
	ClipboardStandard  Clipboard = 0
	ClipboardSelection Clipboard = 1
)

// Runtime holds the host callbacks handed to the engine at app creation.
// Nil callbacks are replaced with no-ops. The engine may invoke them from
// its own threads; implementations must not touch host UI state directly.
type Runtime struct {
	SupportsSelectionClipboard bool

	// Wakeup asks the host to tick soon.
	Wakeup func()
	// Action performs an engine-requested action; target and action are
	// opaque to this layer. Returning true marks the action handled.
	Action func(app App, target, action uintptr) bool
	// ReadClipboard requests the clipboard content for an engine request.
	ReadClipboard func(clipboard Clipboard, request uintptr)
	// ConfirmReadClipboard asks the host to confirm a clipboard read.
	ConfirmReadClipboard func(text string, request uintptr, kind int32)
	// WriteClipboard stores content in the clipboard.
	WriteClipboard func(clipboard Clipboard, content []byte, confirm bool)
	// CloseSurface reports that a surface wants to close.
	CloseSurface func(processAlive bool)
}

// NoopRuntime returns a runtime whose callbacks all do nothing. Hosts that
// integrate clipboard or actions replace individual fields.
func NoopRuntime() *Runtime {
	return &Runtime{
		Wakeup:               func() {},
		Action:               func(App, uintptr, uintptr) bool { return false },
		ReadClipboard:        func(Clipboard, uintptr) {},
		ConfirmReadClipboard: func(string, uintptr, int32) {},
		WriteClipboard:       func(Clipboard, []byte, bool) {},
		CloseSurface:         func(bool) {},
	}
}

// withDefaults fills nil callbacks with no-ops.
func (rt *Runtime) withDefaults() *Runtime {
	d := NoopRuntime()
	if rt == nil {
		return d
	}
	out := *rt
	if out.Wakeup == nil {
		out.Wakeup = d.Wakeup
	}
	if out.Action == nil {
		out.Action = d.Action
	}
	if out.ReadClipboard == nil {
		out.ReadClipboard = d.ReadClipboard
	}
	if out.ConfirmReadClipboard == nil {
		out.ConfirmReadClipboard = d.ConfirmReadClipboard
	}
	if out.WriteClipboard == nil {
		out.WriteClipboard = d.WriteClipboard
	}
	if out.CloseSurface == nil {
		out.CloseSurface = d.CloseSurface
	}
	return &out
}
