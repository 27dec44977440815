package surface

import (
	"github.com/vovakirdan/dotty/internal/ghostty"
	"github.com/vovakirdan/dotty/internal/input"
	"github.com/vovakirdan/dotty/internal/platform"
)

// Strategy is everything that differs per operating system, resolved once
// at startup: the keycode table and the native view builder.
type Strategy struct {
	OS   platform.OS
	Keys *input.Translator
}

// NewStrategy resolves the strategy for os.
func NewStrategy(os platform.OS) Strategy {
	return Strategy{OS: os, Keys: input.NewTranslator(os)}
}

// Bind wraps the widget's native handle for the engine.
func (s Strategy) Bind(handle uintptr) (ghostty.NativeView, error) {
	return platform.NewBinding(s.OS, handle)
}
