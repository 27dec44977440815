//go:build darwin || linux || freebsd || windows

package ghostty

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/purego"
)

// C callbacks created with purego.NewCallback can never be released, so the
// trampolines are created once per process and dispatch to whichever
// Runtime was most recently handed to AppNew.
var (
	trampolinesOnce sync.Once
	trampolines     RuntimeConfig
	activeRuntime   atomic.Pointer[Runtime]
)

func newRuntimeConfig(rt *Runtime) *RuntimeConfig {
	rt = rt.withDefaults()
	activeRuntime.Store(rt)

	trampolinesOnce.Do(func() {
		trampolines = RuntimeConfig{
			WakeupCb:               purego.NewCallback(wakeupTrampoline),
			ActionCb:               purego.NewCallback(actionTrampoline),
			ReadClipboardCb:        purego.NewCallback(readClipboardTrampoline),
			ConfirmReadClipboardCb: purego.NewCallback(confirmReadClipboardTrampoline),
			WriteClipboardCb:       purego.NewCallback(writeClipboardTrampoline),
			CloseSurfaceCb:         purego.NewCallback(closeSurfaceTrampoline),
		}
	})

	rc := trampolines
	rc.SupportsSelectionClipboard = rt.SupportsSelectionClipboard
	return &rc
}

// Narrow C integer and bool arguments arrive in full registers; only the
// low bits are defined.

func cBool(v uintptr) bool { return v&0xff != 0 }

func cInt32(v uintptr) int32 { return int32(uint32(v)) }

// Every trampoline returns a word, even for void C callbacks: Windows
// callbacks must have exactly one uintptr-sized result.

func wakeupTrampoline(_ uintptr) uintptr {
	if rt := activeRuntime.Load(); rt != nil {
		rt.Wakeup()
	}
	return 0
}

func actionTrampoline(app, target, action uintptr) uintptr {
	rt := activeRuntime.Load()
	if rt == nil {
		return 0
	}
	if rt.Action(App(app), target, action) {
		return 1
	}
	return 0
}

func readClipboardTrampoline(_ uintptr, clipboard uintptr, request uintptr) uintptr {
	if rt := activeRuntime.Load(); rt != nil {
		rt.ReadClipboard(Clipboard(cInt32(clipboard)), request)
	}
	return 0
}

func confirmReadClipboardTrampoline(_ uintptr, text uintptr, request uintptr, kind uintptr) uintptr {
	if rt := activeRuntime.Load(); rt != nil {
		rt.ConfirmReadClipboard(goString(unsafe.Pointer(text)), request, cInt32(kind)) //nolint:govet // C memory
	}
	return 0
}

func writeClipboardTrampoline(_ uintptr, clipboard uintptr, content uintptr, n uintptr, confirm uintptr) uintptr {
	if rt := activeRuntime.Load(); rt != nil {
		rt.WriteClipboard(Clipboard(cInt32(clipboard)), goBytes(unsafe.Pointer(content), n), cBool(confirm)) //nolint:govet // C memory
	}
	return 0
}

func closeSurfaceTrampoline(_ uintptr, processAlive uintptr) uintptr {
	if rt := activeRuntime.Load(); rt != nil {
		rt.CloseSurface(cBool(processAlive))
	}
	return 0
}
