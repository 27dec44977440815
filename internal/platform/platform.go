// Package platform detects the operating system the host runs on and
// builds the native view binding handed to the engine at surface creation.
package platform

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/vovakirdan/dotty/internal/ghostty"
)

// OS is an operating system the embedding layer knows about.
type OS int

const (
	Unknown OS = iota
	MacOS
	Windows
	Linux
)

var (
	// ErrUnsupported is returned when no native view binding exists for
	// the operating system.
	ErrUnsupported = errors.New("platform: unsupported operating system")
	// ErrNoHandle is returned when the widget has no native handle yet.
	ErrNoHandle = errors.New("platform: widget has no native handle")
)

// String returns the lowercase OS name.
func (o OS) String() string {
	switch o {
	case MacOS:
		return "macos"
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	default:
		return "unknown"
	}
}

// Current returns the OS of the running process.
func Current() OS {
	return fromGOOS(runtime.GOOS)
}

func fromGOOS(goos string) OS {
	switch goos {
	case "darwin":
		return MacOS
	case "windows":
		return Windows
	case "linux":
		return Linux
	default:
		return Unknown
	}
}

// Parse reads an OS name. The empty string and "auto" mean Current().
func Parse(s string) (OS, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Current(), nil
	case "macos", "darwin", "osx", "mac":
		return MacOS, nil
	case "windows", "win":
		return Windows, nil
	case "linux":
		return Linux, nil
	default:
		return Unknown, fmt.Errorf("platform: unknown OS %q", s)
	}
}

// Supported reports whether the engine can host a surface on o.
func (o OS) Supported() bool {
	return o == MacOS || o == Windows
}

// NewBinding wraps a native handle in the view type the engine expects on
// o. Unsupported systems and zero handles are rejected; the caller must not
// create a surface without a binding.
func NewBinding(o OS, handle uintptr) (ghostty.NativeView, error) {
	if !o.Supported() {
		return ghostty.NativeView{}, fmt.Errorf("%w: %s", ErrUnsupported, o)
	}
	if handle == 0 {
		return ghostty.NativeView{}, ErrNoHandle
	}

	switch o {
	case MacOS:
		return ghostty.MacOSView(handle), nil
	default:
		return ghostty.WindowsView(handle), nil
	}
}
