package host

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyA, "A"},
		{KeyZ, "Z"},
		{KeyD0, "D0"},
		{KeyD9, "D9"},
		{KeyF1, "F1"},
		{KeyF9, "F9"},
		{KeyF10, "F10"},
		{KeyF12, "F12"},
		{KeyOemPlus, "OemPlus"},
		{KeyRWin, "RWin"},
		{KeyNone, "None"},
		{Key(-1), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, expected %q", tt.key, got, tt.want)
		}
	}
}

func TestLetterDigitFunction(t *testing.T) {
	if k, ok := Letter('q'); !ok || k != KeyQ {
		t.Errorf("Letter('q') = %v, %v", k, ok)
	}
	if k, ok := Letter('Q'); !ok || k != KeyQ {
		t.Errorf("Letter('Q') = %v, %v", k, ok)
	}
	if _, ok := Letter('1'); ok {
		t.Error("Letter('1') should fail")
	}
	if k, ok := Digit('7'); !ok || k != KeyD7 {
		t.Errorf("Digit('7') = %v, %v", k, ok)
	}
	if k, ok := Function(11); !ok || k != KeyF11 {
		t.Errorf("Function(11) = %v, %v", k, ok)
	}
	if _, ok := Function(13); ok {
		t.Error("Function(13) should fail")
	}
}

func TestAllKeysUnique(t *testing.T) {
	seen := make(map[Key]bool)
	for _, k := range AllKeys() {
		if seen[k] {
			t.Fatalf("duplicate key %v", k)
		}
		seen[k] = true
	}
	if !seen[KeyNone] || !seen[KeyApps] {
		t.Error("AllKeys() should span KeyNone through the last key")
	}
}

func TestKeyModifiersString(t *testing.T) {
	if got := ModNone.String(); got != "None" {
		t.Errorf("ModNone.String() = %q", got)
	}
	if got := (ModShift | ModMeta).String(); got != "Shift+Meta" {
		t.Errorf("(Shift|Meta).String() = %q", got)
	}
	if !(ModShift | ModControl).Has(ModControl) {
		t.Error("Has(ModControl) = false")
	}
}
