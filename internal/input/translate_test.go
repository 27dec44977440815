package input

import (
	"testing"

	"github.com/vovakirdan/dotty/internal/ghostty"
	"github.com/vovakirdan/dotty/internal/host"
	"github.com/vovakirdan/dotty/internal/platform"
)

func TestMapKeycodeMacOS(t *testing.T) {
	tests := []struct {
		key  host.Key
		want uint32
	}{
		{host.KeyA, 0x00},
		{host.KeyB, 0x0b},
		{host.KeyD0, 0x1d},
		{host.KeyEnter, 0x24},
		{host.KeyBack, 0x33},
		{host.KeyEscape, 0x35},
		{host.KeyLeftShift, 0x38},
		{host.KeyRightShift, 0x3c},
		{host.KeyLWin, 0x37},
		{host.KeyRWin, 0x36},
		{host.KeyLeft, 0x7b},
		{host.KeyUp, 0x7e},
		{host.KeyF1, 0x7a},
	}
	for _, tt := range tests {
		if got := MapKeycode(tt.key, platform.MacOS); got != tt.want {
			t.Errorf("MapKeycode(%v, macos) = %#x, expected %#x", tt.key, got, tt.want)
		}
	}
}

func TestMapKeycodeWindows(t *testing.T) {
	tests := []struct {
		key  host.Key
		want uint32
	}{
		{host.KeyA, 0x41},
		{host.KeyZ, 0x5a},
		{host.KeyD5, 0x35},
		{host.KeyOemPlus, 0xbb},
		{host.KeyOemTilde, 0xc0},
		{host.KeyEnter, 0x0d},
		{host.KeySpace, 0x20},
		{host.KeyLeftCtrl, 0xa2},
		{host.KeyRightAlt, 0xa5},
		{host.KeyDown, 0x28},
		{host.KeyF12, 0x7b},
	}
	for _, tt := range tests {
		if got := MapKeycode(tt.key, platform.Windows); got != tt.want {
			t.Errorf("MapKeycode(%v, windows) = %#x, expected %#x", tt.key, got, tt.want)
		}
	}
}

func TestMapKeycodeUnknown(t *testing.T) {
	for _, os := range []platform.OS{platform.MacOS, platform.Windows} {
		if got := MapKeycode(host.KeyNone, os); got != Unknown {
			t.Errorf("MapKeycode(None, %v) = %#x, expected Unknown", os, got)
		}
		if got := MapKeycode(host.Key(9999), os); got != Unknown {
			t.Errorf("MapKeycode(9999, %v) = %#x, expected Unknown", os, got)
		}
	}
	if got := MapKeycode(host.KeyNumLock, platform.MacOS); got != Unknown {
		t.Errorf("NumLock has no macOS keycode, got %#x", got)
	}
}

func TestMapKeycodeTotal(t *testing.T) {
	for _, os := range []platform.OS{platform.MacOS, platform.Windows, platform.Linux, platform.Unknown} {
		for _, k := range host.AllKeys() {
			first := MapKeycode(k, os)
			if again := MapKeycode(k, os); again != first {
				t.Fatalf("MapKeycode(%v, %v) not deterministic", k, os)
			}
		}
	}
}

func TestTablesHaveDistinctCodes(t *testing.T) {
	for _, os := range []platform.OS{platform.MacOS, platform.Windows} {
		seen := make(map[uint32]host.Key)
		for k, code := range Table(os) {
			if other, dup := seen[code]; dup {
				t.Errorf("%v: %v and %v share keycode %#x", os, k, other, code)
			}
			seen[code] = k
		}
	}
}

func TestMapModifiersIndependentBits(t *testing.T) {
	bits := []struct {
		in  host.KeyModifiers
		out ghostty.Mods
	}{
		{host.ModShift, ghostty.ModShift},
		{host.ModControl, ghostty.ModCtrl},
		{host.ModAlt, ghostty.ModAlt},
		{host.ModMeta, ghostty.ModSuper},
	}

	for combo := 0; combo < 16; combo++ {
		in := host.KeyModifiers(combo)
		want := ghostty.ModNone
		for _, b := range bits {
			if in&b.in != 0 {
				want |= b.out
			}
		}
		if got := MapModifiers(in); got != want {
			t.Errorf("MapModifiers(%v) = %v, expected %v", in, got, want)
		}
	}
}

func TestBuildKeyEventPlainA(t *testing.T) {
	ev := BuildKeyEvent(ghostty.ActionPress, host.KeyA, host.ModNone, platform.MacOS)
	if ev.Keycode != 0x00 {
		t.Errorf("Keycode = %#x, expected 0x00", ev.Keycode)
	}
	if ev.Mods != ghostty.ModNone {
		t.Errorf("Mods = %v, expected none", ev.Mods)
	}
	if ev.Action != ghostty.ActionPress {
		t.Errorf("Action = %v, expected press", ev.Action)
	}
	if ev.Text != nil || ev.Composing || ev.ConsumedMods != 0 {
		t.Errorf("unexpected extra fields: %+v", ev)
	}
}

func TestBuildKeyEventRightModifiers(t *testing.T) {
	ev := BuildKeyEvent(ghostty.ActionPress, host.KeyRightShift, host.ModShift, platform.MacOS)
	if ev.Mods != ghostty.ModShift|ghostty.ModShiftRight {
		t.Errorf("right shift press mods = %v", ev.Mods)
	}

	ev = BuildKeyEvent(ghostty.ActionRelease, host.KeyRightShift, host.ModNone, platform.MacOS)
	if ev.Mods != ghostty.ModNone {
		t.Errorf("right shift release without shift mods = %v", ev.Mods)
	}

	ev = BuildKeyEvent(ghostty.ActionPress, host.KeyLeftCtrl, host.ModControl, platform.Windows)
	if ev.Mods != ghostty.ModCtrl {
		t.Errorf("left ctrl press mods = %v", ev.Mods)
	}

	ev = BuildKeyEvent(ghostty.ActionPress, host.KeyRWin, host.ModMeta, platform.Windows)
	if ev.Mods != ghostty.ModSuper|ghostty.ModSuperRight {
		t.Errorf("right win press mods = %v", ev.Mods)
	}
}

func TestEncodeText(t *testing.T) {
	b, ok := EncodeText("é")
	if !ok || len(b) != 2 {
		t.Errorf("EncodeText(é) = %v, %v; expected 2 bytes", b, ok)
	}
	if _, ok := EncodeText(""); ok {
		t.Error("EncodeText(\"\") should not be forwarded")
	}
}

func TestTranslator(t *testing.T) {
	tr := NewTranslator(platform.Windows)
	if tr.OS() != platform.Windows {
		t.Errorf("OS() = %v", tr.OS())
	}
	down := tr.KeyDown(&host.KeyEventArgs{Key: host.KeyC, Modifiers: host.ModControl})
	if down.Action != ghostty.ActionPress || down.Keycode != 0x43 || down.Mods != ghostty.ModCtrl {
		t.Errorf("KeyDown() = %+v", down)
	}
	up := tr.KeyUp(&host.KeyEventArgs{Key: host.KeyC})
	if up.Action != ghostty.ActionRelease || up.Keycode != 0x43 {
		t.Errorf("KeyUp() = %+v", up)
	}
}
