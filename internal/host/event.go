package host

// KeyEventArgs carries one key-down or key-up. Handlers set Handled to stop
// the toolkit from processing the key any further.
type KeyEventArgs struct {
	Key       Key
	Modifiers KeyModifiers
	Handled   bool
}

// TextInputEventArgs carries committed text from the toolkit's text input
// path.
type TextInputEventArgs struct {
	Text    string
	Handled bool
}

// PointerPressedEventArgs carries a pointer press at cell coordinates.
type PointerPressedEventArgs struct {
	X, Y    int
	Handled bool
}

// Widget is the host widget a terminal surface is embedded in.
type Widget interface {
	// NativeHandle returns the platform window or view handle backing
	// the widget (NSView on macOS, HWND on Windows), or 0 if none.
	NativeHandle() uintptr
	// RenderScaling returns the display scale factor of the widget's
	// top-level window.
	RenderScaling() float64
	// Focus asks the toolkit to move keyboard focus to the widget. The
	// toolkit answers with a got-focus notification.
	Focus()
}
