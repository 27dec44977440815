//go:build darwin || linux || freebsd

package ghostty

import (
	"path/filepath"
	"runtime"

	"github.com/ebitengine/purego"
)

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func lookupSymbol(h uintptr, name string) (uintptr, error) {
	return purego.Dlsym(h, name)
}

// DefaultLibraryPath is where the library is looked for when no path is
// configured: a Native directory next to the working directory.
func DefaultLibraryPath() string {
	if runtime.GOOS == "darwin" {
		return filepath.Join("Native", "libghostty.dylib")
	}
	return filepath.Join("Native", "libghostty.so")
}
