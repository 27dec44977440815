//go:build windows

package ghostty

import (
	"path/filepath"

	"golang.org/x/sys/windows"
)

func openLibrary(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	return uintptr(h), err
}

func lookupSymbol(h uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(h), name)
}

// DefaultLibraryPath is where the library is looked for when no path is
// configured: a Native directory next to the working directory.
func DefaultLibraryPath() string {
	return filepath.Join("Native", "ghostty.dll")
}
