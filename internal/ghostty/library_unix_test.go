//go:build darwin || linux || freebsd

package ghostty

import "runtime"

var systemLibrary = map[string]string{
	"darwin":  "/usr/lib/libSystem.B.dylib",
	"linux":   "libc.so.6",
	"freebsd": "libc.so.7",
}[runtime.GOOS]

const systemSymbol = "getpid"
