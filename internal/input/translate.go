// Package input translates host toolkit key and text events into the
// engine's platform-native keycodes and modifier bitset. Everything here is
// pure: no engine calls, no I/O.
package input

import (
	"github.com/vovakirdan/dotty/internal/ghostty"
	"github.com/vovakirdan/dotty/internal/host"
	"github.com/vovakirdan/dotty/internal/platform"
)

// Table returns the keycode table used on os. Windows uses virtual-key
// codes; every other system uses the macOS keycode space.
func Table(os platform.OS) map[host.Key]uint32 {
	if os == platform.Windows {
		return windowsKeycodes
	}
	return macOSKeycodes
}

// MapKeycode returns the native keycode of key on os, or Unknown.
func MapKeycode(key host.Key, os platform.OS) uint32 {
	return lookup(Table(os), key)
}

func lookup(table map[host.Key]uint32, key host.Key) uint32 {
	if code, ok := table[key]; ok {
		return code
	}
	return Unknown
}

// MapModifiers translates each host modifier bit independently. It never
// sets the right-hand bits: the host's combined flags cannot tell sides
// apart.
func MapModifiers(m host.KeyModifiers) ghostty.Mods {
	mods := ghostty.ModNone
	if m.Has(host.ModShift) {
		mods |= ghostty.ModShift
	}
	if m.Has(host.ModControl) {
		mods |= ghostty.ModCtrl
	}
	if m.Has(host.ModAlt) {
		mods |= ghostty.ModAlt
	}
	if m.Has(host.ModMeta) {
		mods |= ghostty.ModSuper
	}
	return mods
}

// rightSide maps right-hand modifier keys to the side-neutral bit they
// require and the right-hand bit they add.
var rightSide = map[host.Key][2]ghostty.Mods{
	host.KeyRightShift: {ghostty.ModShift, ghostty.ModShiftRight},
	host.KeyRightCtrl:  {ghostty.ModCtrl, ghostty.ModCtrlRight},
	host.KeyRightAlt:   {ghostty.ModAlt, ghostty.ModAltRight},
	host.KeyRWin:       {ghostty.ModSuper, ghostty.ModSuperRight},
}

// SideMods adds the right-hand bit when key is itself a right-hand
// modifier and the matching side-neutral bit is already set.
func SideMods(key host.Key, mods ghostty.Mods) ghostty.Mods {
	if side, ok := rightSide[key]; ok && mods.Has(side[0]) {
		mods |= side[1]
	}
	return mods
}

// BuildKeyEvent composes one engine key event. Text, consumed modifiers and
// the unshifted codepoint stay empty: committed text travels separately
// through EncodeText.
func BuildKeyEvent(action ghostty.InputAction, key host.Key, m host.KeyModifiers, os platform.OS) ghostty.InputKey {
	return buildKeyEvent(Table(os), action, key, m)
}

func buildKeyEvent(table map[host.Key]uint32, action ghostty.InputAction, key host.Key, m host.KeyModifiers) ghostty.InputKey {
	return ghostty.InputKey{
		Action:  action,
		Keycode: lookup(table, key),
		Mods:    SideMods(key, MapModifiers(m)),
	}
}

// EncodeText returns the UTF-8 bytes of committed text. The second result
// is false for empty text, which must not be forwarded.
func EncodeText(text string) ([]byte, bool) {
	if text == "" {
		return nil, false
	}
	return []byte(text), true
}

// Translator is the keycode strategy resolved once for a platform.
type Translator struct {
	os    platform.OS
	table map[host.Key]uint32
}

// NewTranslator resolves the keycode table for os.
func NewTranslator(os platform.OS) *Translator {
	return &Translator{os: os, table: Table(os)}
}

// OS returns the platform the translator was resolved for.
func (t *Translator) OS() platform.OS { return t.os }

// Keycode maps one key.
func (t *Translator) Keycode(key host.Key) uint32 { return lookup(t.table, key) }

// KeyDown builds a press event from a key-down.
func (t *Translator) KeyDown(e *host.KeyEventArgs) ghostty.InputKey {
	return buildKeyEvent(t.table, ghostty.ActionPress, e.Key, e.Modifiers)
}

// KeyUp builds a release event from a key-up.
func (t *Translator) KeyUp(e *host.KeyEventArgs) ghostty.InputKey {
	return buildKeyEvent(t.table, ghostty.ActionRelease, e.Key, e.Modifiers)
}
