//go:build darwin || linux || freebsd || windows

package ghostty

import (
	"errors"
	"runtime"
	"testing"
	"unsafe"
)

// structABISupported lists the targets whose struct-passing symbols can be
// declared.
func structABISupported() bool {
	return runtime.GOOS == "darwin" || runtime.GOARCH == "amd64"
}

func TestBindRegistersEverySignature(t *testing.T) {
	h, err := openLibrary(systemLibrary)
	if err != nil {
		t.Skipf("cannot load %s: %v", systemLibrary, err)
	}
	addr, err := lookupSymbol(h, systemSymbol)
	if err != nil {
		t.Fatalf("lookupSymbol(%s) failed: %v", systemSymbol, err)
	}

	var resolved []string
	lib := &Library{}
	err = lib.bind(func(name string) (uintptr, error) {
		resolved = append(resolved, name)
		return addr, nil
	})

	if !structABISupported() {
		if !errors.Is(err, ErrUnsupportedABI) {
			t.Fatalf("bind() = %v, expected ErrUnsupportedABI", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("bind() failed: %v", err)
	}
	if len(resolved) != 16 {
		t.Errorf("resolved %d symbols, expected 16: %v", len(resolved), resolved)
	}
	if lib.ghosttyInit == nil || lib.surfaceText == nil {
		t.Error("plain symbols were not registered")
	}
}

func TestBindMissingSymbol(t *testing.T) {
	if !structABISupported() {
		t.Skip("library is refused before symbols are resolved")
	}
	missing := errors.New("not found")
	lib := &Library{}
	err := lib.bind(func(name string) (uintptr, error) {
		if name == "ghostty_surface_draw" {
			return 0, missing
		}
		return 1, nil
	})
	if !errors.Is(err, missing) {
		t.Fatalf("bind() = %v, expected the lookup error", err)
	}
}

func TestRegisterFuncRecoversPanic(t *testing.T) {
	var notFunc int
	err := registerFunc(&notFunc, 1)
	if !errors.Is(err, ErrUnsupportedABI) {
		t.Fatalf("registerFunc() = %v, expected ErrUnsupportedABI", err)
	}
}

func TestOpenMissingLibrary(t *testing.T) {
	lib, err := Open("does-not-exist/libghostty-missing")
	if err == nil || lib != nil {
		t.Fatalf("Open() = %v, %v; expected an error", lib, err)
	}
}

type recordingRuntime struct {
	wakeups   int
	action    [3]uintptr
	clipboard Clipboard
	request   uintptr
	text      string
	kind      int32
	content   []byte
	confirm   bool
	alive     bool
	closed    bool
}

func (r *recordingRuntime) runtime() *Runtime {
	return &Runtime{
		Wakeup: func() { r.wakeups++ },
		Action: func(app App, target, action uintptr) bool {
			r.action = [3]uintptr{uintptr(app), target, action}
			return true
		},
		ReadClipboard: func(c Clipboard, req uintptr) {
			r.clipboard, r.request = c, req
		},
		ConfirmReadClipboard: func(text string, req uintptr, kind int32) {
			r.text, r.request, r.kind = text, req, kind
		},
		WriteClipboard: func(c Clipboard, content []byte, confirm bool) {
			r.clipboard, r.content, r.confirm = c, content, confirm
		},
		CloseSurface: func(alive bool) {
			r.closed, r.alive = true, alive
		},
	}
}

func TestTrampolinesDispatchToActiveRuntime(t *testing.T) {
	rec := &recordingRuntime{}
	rc := newRuntimeConfig(rec.runtime())
	if rc.WakeupCb == 0 || rc.CloseSurfaceCb == 0 {
		t.Fatal("newRuntimeConfig() left callbacks unset")
	}

	wakeupTrampoline(0)
	if rec.wakeups != 1 {
		t.Errorf("wakeups = %d, expected 1", rec.wakeups)
	}

	if got := actionTrampoline(7, 8, 9); got != 1 {
		t.Errorf("actionTrampoline() = %d, expected 1", got)
	}
	if rec.action != [3]uintptr{7, 8, 9} {
		t.Errorf("action args = %v", rec.action)
	}

	// garbage above the low 32 bits must be ignored
	high := ^uintptr(0) &^ 0xffff_ffff
	readClipboardTrampoline(0, high|1, 42)
	if rec.clipboard != ClipboardSelection || rec.request != 42 {
		t.Errorf("read clipboard = %d, %d", rec.clipboard, rec.request)
	}

	text := []byte("paste me\x00")
	confirmReadClipboardTrampoline(0, uintptr(unsafe.Pointer(&text[0])), 5, ^uintptr(0))
	runtime.KeepAlive(text)
	if rec.text != "paste me" || rec.request != 5 || rec.kind != -1 {
		t.Errorf("confirm read = %q, %d, %d", rec.text, rec.request, rec.kind)
	}

	content := []byte("copied")
	writeClipboardTrampoline(0, 0, uintptr(unsafe.Pointer(&content[0])), uintptr(len(content)), 0x100)
	runtime.KeepAlive(content)
	if rec.clipboard != ClipboardStandard || string(rec.content) != "copied" {
		t.Errorf("write clipboard = %d, %q", rec.clipboard, rec.content)
	}
	// only the low byte of a C bool is defined
	if rec.confirm {
		t.Error("confirm = true for a zero low byte")
	}

	closeSurfaceTrampoline(0, 0x201)
	if !rec.closed || !rec.alive {
		t.Errorf("close surface = %v, alive %v", rec.closed, rec.alive)
	}
}

func TestTrampolinesFollowLatestRuntime(t *testing.T) {
	first := &recordingRuntime{}
	second := &recordingRuntime{}
	newRuntimeConfig(first.runtime())
	rc := newRuntimeConfig(second.runtime())

	wakeupTrampoline(0)
	if first.wakeups != 0 || second.wakeups != 1 {
		t.Errorf("wakeups = %d, %d; expected 0, 1", first.wakeups, second.wakeups)
	}
	if rc.WakeupCb != trampolines.WakeupCb {
		t.Error("trampolines were recreated")
	}
}

func TestTrampolinesWithNilCallbacks(t *testing.T) {
	newRuntimeConfig(&Runtime{})
	wakeupTrampoline(0)
	if got := actionTrampoline(1, 2, 3); got != 0 {
		t.Errorf("actionTrampoline() = %d with no-op runtime, expected 0", got)
	}
	closeSurfaceTrampoline(0, 1)
}
