//go:build !darwin && !linux && !freebsd && !windows

package ghostty

import (
	"errors"
	"runtime"
)

// ErrNoLoader is returned by Open on targets without a dynamic loader.
var ErrNoLoader = errors.New("ghostty: dynamic loading not supported on " + runtime.GOOS)

// Library is unavailable on this target.
type Library struct{ Binding }

// Open always fails on this target.
func Open(string) (*Library, error) { return nil, ErrNoLoader }

// DefaultLibraryPath returns an empty path on this target.
func DefaultLibraryPath() string { return "" }

// Path returns an empty path on this target.
func (l *Library) Path() string { return "" }
