// Package host models the host toolkit's side of the embedding: its key
// enumeration, modifier flags, routed event arguments, and the widget
// contract the terminal surface is bound to. The toolkit front-end (the
// Bubble Tea host in platform/tui) produces these values; the rest of dotty
// consumes them without knowing which toolkit is driving.
package host

// Key identifies a physical key as the host toolkit reports it. Left and
// right modifier keys are distinct identities.
type Key int

const (
	KeyNone Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyD0
	KeyD1
	KeyD2
	KeyD3
	KeyD4
	KeyD5
	KeyD6
	KeyD7
	KeyD8
	KeyD9

	KeyOemPlus          // = +
	KeyOemMinus         // - _
	KeyOemOpenBrackets  // [ {
	KeyOemCloseBrackets // ] }
	KeyOemQuotes        // ' "
	KeyOemSemicolon     // ; :
	KeyOemPipe          // \ |
	KeyOemComma         // , <
	KeyOemPeriod        // . >
	KeyOemQuestion      // / ?
	KeyOemTilde         // ` ~

	KeyEnter
	KeyTab
	KeySpace
	KeyBack
	KeyEscape
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	KeyLeftCtrl
	KeyLeftShift
	KeyLeftAlt
	KeyLWin
	KeyRightCtrl
	KeyRightShift
	KeyRightAlt
	KeyRWin
	KeyCapsLock
	KeyNumLock

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyPrintScreen
	KeyScroll
	KeyPause
	KeyApps

	keyCount
)

// AllKeys returns every key identity, KeyNone included.
func AllKeys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := KeyNone; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

var keyNames = map[Key]string{
	KeyNone:             "None",
	KeyOemPlus:          "OemPlus",
	KeyOemMinus:         "OemMinus",
	KeyOemOpenBrackets:  "OemOpenBrackets",
	KeyOemCloseBrackets: "OemCloseBrackets",
	KeyOemQuotes:        "OemQuotes",
	KeyOemSemicolon:     "OemSemicolon",
	KeyOemPipe:          "OemPipe",
	KeyOemComma:         "OemComma",
	KeyOemPeriod:        "OemPeriod",
	KeyOemQuestion:      "OemQuestion",
	KeyOemTilde:         "OemTilde",
	KeyEnter:            "Enter",
	KeyTab:              "Tab",
	KeySpace:            "Space",
	KeyBack:             "Back",
	KeyEscape:           "Escape",
	KeyDelete:           "Delete",
	KeyInsert:           "Insert",
	KeyHome:             "Home",
	KeyEnd:              "End",
	KeyPageUp:           "PageUp",
	KeyPageDown:         "PageDown",
	KeyLeft:             "Left",
	KeyRight:            "Right",
	KeyUp:               "Up",
	KeyDown:             "Down",
	KeyLeftCtrl:         "LeftCtrl",
	KeyLeftShift:        "LeftShift",
	KeyLeftAlt:          "LeftAlt",
	KeyLWin:             "LWin",
	KeyRightCtrl:        "RightCtrl",
	KeyRightShift:       "RightShift",
	KeyRightAlt:         "RightAlt",
	KeyRWin:             "RWin",
	KeyCapsLock:         "CapsLock",
	KeyNumLock:          "NumLock",
	KeyPrintScreen:      "PrintScreen",
	KeyScroll:           "Scroll",
	KeyPause:            "Pause",
	KeyApps:             "Apps",
}

// String returns the toolkit name of the key ("A", "D1", "OemPlus", "F5").
func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= KeyD0 && k <= KeyD9:
		return "D" + string(rune('0'+int(k-KeyD0)))
	case k >= KeyF1 && k <= KeyF12:
		n := int(k-KeyF1) + 1
		if n >= 10 {
			return "F1" + string(rune('0'+n-10))
		}
		return "F" + string(rune('0'+n))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Letter returns the key for an ASCII letter, case-insensitive.
func Letter(r rune) (Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A'), true
	}
	return KeyNone, false
}

// Digit returns the top-row key for an ASCII digit.
func Digit(r rune) (Key, bool) {
	if r >= '0' && r <= '9' {
		return KeyD0 + Key(r-'0'), true
	}
	return KeyNone, false
}

// Function returns the key for F1..F12.
func Function(n int) (Key, bool) {
	if n >= 1 && n <= 12 {
		return KeyF1 + Key(n-1), true
	}
	return KeyNone, false
}

// KeyModifiers is the host toolkit's combined modifier state. It does not
// distinguish left from right.
type KeyModifiers uint8

const (
	ModNone    KeyModifiers = 0
	ModShift   KeyModifiers = 1 << 0
	ModControl KeyModifiers = 1 << 1
	ModAlt     KeyModifiers = 1 << 2
	ModMeta    KeyModifiers = 1 << 3
)

// Has reports whether all bits of m2 are set.
func (m KeyModifiers) Has(m2 KeyModifiers) bool {
	return m&m2 == m2
}

// String joins the set modifier names with "+".
func (m KeyModifiers) String() string {
	if m == ModNone {
		return "None"
	}
	s := ""
	add := func(bit KeyModifiers, name string) {
		if m&bit == 0 {
			return
		}
		if s != "" {
			s += "+"
		}
		s += name
	}
	add(ModShift, "Shift")
	add(ModControl, "Control")
	add(ModAlt, "Alt")
	add(ModMeta, "Meta")
	return s
}
