package tui

import "github.com/vovakirdan/dotty/internal/host"

// Widget is the terminal widget as seen by the surface controller. The
// native view is owned by the embedding application and handed to dotty
// by handle; a zero handle leaves the widget without a terminal.
type Widget struct {
	handle   uintptr
	scale    float64
	gotFocus func()
}

var _ host.Widget = (*Widget)(nil)

// NewWidget returns a widget for a native view handle at the given display
// scale.
func NewWidget(handle uintptr, scale float64) *Widget {
	return &Widget{handle: handle, scale: scale}
}

// NativeHandle implements host.Widget.
func (w *Widget) NativeHandle() uintptr { return w.handle }

// RenderScaling implements host.Widget.
func (w *Widget) RenderScaling() float64 { return w.scale }

// SetScale updates the display scale, as after moving to another monitor.
func (w *Widget) SetScale(scale float64) { w.scale = scale }

// Focus implements host.Widget. The terminal is the only focusable
// element, so the got-focus notification is delivered right away.
func (w *Widget) Focus() {
	if w.gotFocus != nil {
		w.gotFocus()
	}
}

// OnGotFocus sets the got-focus handler.
func (w *Widget) OnGotFocus(f func()) { w.gotFocus = f }
