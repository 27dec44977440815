package ghostty

// The types in this file mirror the C structures of libghostty's embedding
// API field for field. Go lays out these structs with the same alignment
// rules as C on the supported 64-bit targets, so they are passed to the
// library as-is.

// PlatformTag discriminates the Platform union.
type PlatformTag uint32

const (
	PlatformInvalid PlatformTag = 0
	PlatformMacOS   PlatformTag = 1
	PlatformIOS     PlatformTag = 2
	PlatformWindows PlatformTag = 3
)

// String returns the tag name.
func (t PlatformTag) String() string {
	switch t {
	case PlatformMacOS:
		return "macos"
	case PlatformIOS:
		return "ios"
	case PlatformWindows:
		return "windows"
	default:
		return "invalid"
	}
}

// Platform is the native view union. Exactly one member is meaningful and
// which one is decided by the PlatformTag stored next to it. All members
// share offset 0, so the union is a single pointer-sized word.
type Platform struct {
	view uintptr
}

// NSView returns the macOS view pointer.
func (p Platform) NSView() uintptr { return p.view }

// UIView returns the iOS view pointer.
func (p Platform) UIView() uintptr { return p.view }

// HWND returns the Windows window handle.
func (p Platform) HWND() uintptr { return p.view }

// SurfaceContext tells the engine where a new surface lives.
type SurfaceContext uint32

const (
	ContextWindow SurfaceContext = 0
	ContextTab    SurfaceContext = 1
	ContextSplit  SurfaceContext = 2
)

// EnvVar is one entry of SurfaceConfig.EnvVars.
type EnvVar struct {
	Key   *byte
	Value *byte
}

// SurfaceConfig mirrors ghostty_surface_config_s.
type SurfaceConfig struct {
	PlatformTag      PlatformTag
	Platform         Platform
	Userdata         uintptr
	ScaleFactor      float64
	FontSize         float32
	WorkingDirectory *byte
	Command          *byte
	EnvVars          *EnvVar
	EnvVarCount      uintptr
	InitialInput     *byte
	WaitAfterCommand bool
	Context          SurfaceContext
}

// RuntimeConfig mirrors ghostty_runtime_config_s. The field order is fixed
// by the library; every callback is a C function pointer.
type RuntimeConfig struct {
	Userdata                   uintptr
	SupportsSelectionClipboard bool
	WakeupCb                   uintptr
	ActionCb                   uintptr
	ReadClipboardCb            uintptr
	ConfirmReadClipboardCb     uintptr
	WriteClipboardCb           uintptr
	CloseSurfaceCb             uintptr
}

// InputAction is the key transition reported to the engine.
type InputAction uint32

const (
	ActionRelease InputAction = 0
	ActionPress   InputAction = 1
	ActionRepeat  InputAction = 2
)

// String returns the action name.
func (a InputAction) String() string {
	switch a {
	case ActionRelease:
		return "release"
	case ActionPress:
		return "press"
	case ActionRepeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// Mods is the engine's modifier bitset.
type Mods uint32

const (
	ModNone       Mods = 0
	ModShift      Mods = 1 << 0
	ModCtrl       Mods = 1 << 1
	ModAlt        Mods = 1 << 2
	ModSuper      Mods = 1 << 3
	ModCaps       Mods = 1 << 4
	ModNum        Mods = 1 << 5
	ModShiftRight Mods = 1 << 6
	ModCtrlRight  Mods = 1 << 7
	ModAltRight   Mods = 1 << 8
	ModSuperRight Mods = 1 << 9
)

var modNames = []struct {
	bit  Mods
	name string
}{
	{ModShift, "shift"},
	{ModCtrl, "ctrl"},
	{ModAlt, "alt"},
	{ModSuper, "super"},
	{ModCaps, "caps"},
	{ModNum, "num"},
	{ModShiftRight, "shift_right"},
	{ModCtrlRight, "ctrl_right"},
	{ModAltRight, "alt_right"},
	{ModSuperRight, "super_right"},
}

// Has reports whether every bit of m2 is set in m.
func (m Mods) Has(m2 Mods) bool {
	return m&m2 == m2
}

// String joins the set bit names with "+", or returns "none".
func (m Mods) String() string {
	if m == ModNone {
		return "none"
	}
	s := ""
	for _, n := range modNames {
		if m&n.bit == 0 {
			continue
		}
		if s != "" {
			s += "+"
		}
		s += n.name
	}
	return s
}

// InputKey mirrors ghostty_input_key_s.
type InputKey struct {
	Action             InputAction
	Mods               Mods
	ConsumedMods       Mods
	Keycode            uint32
	Text               *byte
	UnshiftedCodepoint uint32
	Composing          bool
}

// NativeView pairs a PlatformTag with the matching union member. The only
// way to build one is through the per-platform constructors, so tag and
// member cannot disagree.
type NativeView struct {
	tag      PlatformTag
	platform Platform
}

// MacOSView wraps an NSView pointer.
func MacOSView(nsview uintptr) NativeView {
	return NativeView{tag: PlatformMacOS, platform: Platform{view: nsview}}
}

// IOSView wraps a UIView pointer.
func IOSView(uiview uintptr) NativeView {
	return NativeView{tag: PlatformIOS, platform: Platform{view: uiview}}
}

// WindowsView wraps an HWND.
func WindowsView(hwnd uintptr) NativeView {
	return NativeView{tag: PlatformWindows, platform: Platform{view: hwnd}}
}

// Tag returns the discriminator.
func (v NativeView) Tag() PlatformTag { return v.tag }

// Platform returns the union value.
func (v NativeView) Platform() Platform { return v.platform }

// Handle returns the raw native pointer regardless of platform.
func (v NativeView) Handle() uintptr { return v.platform.view }

// SetView stores a native view in the config, tag and union together.
func (c *SurfaceConfig) SetView(v NativeView) {
	c.PlatformTag = v.tag
	c.Platform = v.platform
}

// View returns the native view stored in the config.
func (c *SurfaceConfig) View() NativeView {
	return NativeView{tag: c.PlatformTag, platform: c.Platform}
}
