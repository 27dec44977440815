package input

import "github.com/vovakirdan/dotty/internal/host"

// Unknown is the keycode reported for keys missing from a platform table.
const Unknown uint32 = 0xFFFF

// macOSKeycodes maps host keys to macOS virtual keycodes (CGKeyCode, the
// kVK_* constants from HIToolbox/Events.h).
var macOSKeycodes = map[host.Key]uint32{
	host.KeyA: 0x00,
	host.KeyS: 0x01,
	host.KeyD: 0x02,
	host.KeyF: 0x03,
	host.KeyH: 0x04,
	host.KeyG: 0x05,
	host.KeyZ: 0x06,
	host.KeyX: 0x07,
	host.KeyC: 0x08,
	host.KeyV: 0x09,
	host.KeyB: 0x0b,
	host.KeyQ: 0x0c,
	host.KeyW: 0x0d,
	host.KeyE: 0x0e,
	host.KeyR: 0x0f,
	host.KeyY: 0x10,
	host.KeyT: 0x11,

	host.KeyD1:               0x12,
	host.KeyD2:               0x13,
	host.KeyD3:               0x14,
	host.KeyD4:               0x15,
	host.KeyD6:               0x16,
	host.KeyD5:               0x17,
	host.KeyOemPlus:          0x18, // kVK_ANSI_Equal
	host.KeyD9:               0x19,
	host.KeyD7:               0x1a,
	host.KeyOemMinus:         0x1b,
	host.KeyD8:               0x1c,
	host.KeyD0:               0x1d,
	host.KeyOemCloseBrackets: 0x1e,
	host.KeyO:                0x1f,
	host.KeyU:                0x20,
	host.KeyOemOpenBrackets:  0x21,
	host.KeyI:                0x22,
	host.KeyP:                0x23,
	host.KeyEnter:            0x24,
	host.KeyL:                0x25,
	host.KeyJ:                0x26,
	host.KeyOemQuotes:        0x27,
	host.KeyK:                0x28,
	host.KeyOemSemicolon:     0x29,
	host.KeyOemPipe:          0x2a, // kVK_ANSI_Backslash
	host.KeyOemComma:         0x2b,
	host.KeyOemQuestion:      0x2c, // kVK_ANSI_Slash
	host.KeyN:                0x2d,
	host.KeyM:                0x2e,
	host.KeyOemPeriod:        0x2f,
	host.KeyTab:              0x30,
	host.KeySpace:            0x31,
	host.KeyOemTilde:         0x32, // kVK_ANSI_Grave
	host.KeyBack:             0x33, // kVK_Delete
	host.KeyEscape:           0x35,

	host.KeyRWin:       0x36,
	host.KeyLWin:       0x37,
	host.KeyLeftShift:  0x38,
	host.KeyCapsLock:   0x39,
	host.KeyLeftAlt:    0x3a,
	host.KeyLeftCtrl:   0x3b,
	host.KeyRightShift: 0x3c,
	host.KeyRightAlt:   0x3d,
	host.KeyRightCtrl:  0x3e,

	host.KeyF5:       0x60,
	host.KeyF6:       0x61,
	host.KeyF7:       0x62,
	host.KeyF3:       0x63,
	host.KeyF8:       0x64,
	host.KeyF9:       0x65,
	host.KeyF11:      0x67,
	host.KeyF10:      0x6d,
	host.KeyF12:      0x6f,
	host.KeyInsert:   0x72, // kVK_Help sits where Insert is on PC layouts
	host.KeyHome:     0x73,
	host.KeyPageUp:   0x74,
	host.KeyDelete:   0x75, // kVK_ForwardDelete
	host.KeyF4:       0x76,
	host.KeyEnd:      0x77,
	host.KeyF2:       0x78,
	host.KeyPageDown: 0x79,
	host.KeyF1:       0x7a,

	host.KeyLeft:  0x7b,
	host.KeyRight: 0x7c,
	host.KeyDown:  0x7d,
	host.KeyUp:    0x7e,
}

// windowsKeycodes maps host keys to Windows virtual-key codes (VK_*).
var windowsKeycodes = map[host.Key]uint32{
	host.KeyA: 0x41,
	host.KeyB: 0x42,
	host.KeyC: 0x43,
	host.KeyD: 0x44,
	host.KeyE: 0x45,
	host.KeyF: 0x46,
	host.KeyG: 0x47,
	host.KeyH: 0x48,
	host.KeyI: 0x49,
	host.KeyJ: 0x4a,
	host.KeyK: 0x4b,
	host.KeyL: 0x4c,
	host.KeyM: 0x4d,
	host.KeyN: 0x4e,
	host.KeyO: 0x4f,
	host.KeyP: 0x50,
	host.KeyQ: 0x51,
	host.KeyR: 0x52,
	host.KeyS: 0x53,
	host.KeyT: 0x54,
	host.KeyU: 0x55,
	host.KeyV: 0x56,
	host.KeyW: 0x57,
	host.KeyX: 0x58,
	host.KeyY: 0x59,
	host.KeyZ: 0x5a,

	host.KeyD0: 0x30,
	host.KeyD1: 0x31,
	host.KeyD2: 0x32,
	host.KeyD3: 0x33,
	host.KeyD4: 0x34,
	host.KeyD5: 0x35,
	host.KeyD6: 0x36,
	host.KeyD7: 0x37,
	host.KeyD8: 0x38,
	host.KeyD9: 0x39,

	host.KeyOemSemicolon:     0xba,
	host.KeyOemPlus:          0xbb,
	host.KeyOemComma:         0xbc,
	host.KeyOemMinus:         0xbd,
	host.KeyOemPeriod:        0xbe,
	host.KeyOemQuestion:      0xbf,
	host.KeyOemTilde:         0xc0,
	host.KeyOemOpenBrackets:  0xdb,
	host.KeyOemPipe:          0xdc,
	host.KeyOemCloseBrackets: 0xdd,
	host.KeyOemQuotes:        0xde,

	host.KeyBack:        0x08,
	host.KeyTab:         0x09,
	host.KeyEnter:       0x0d,
	host.KeyPause:       0x13,
	host.KeyCapsLock:    0x14,
	host.KeyEscape:      0x1b,
	host.KeySpace:       0x20,
	host.KeyPageUp:      0x21,
	host.KeyPageDown:    0x22,
	host.KeyEnd:         0x23,
	host.KeyHome:        0x24,
	host.KeyLeft:        0x25,
	host.KeyUp:          0x26,
	host.KeyRight:       0x27,
	host.KeyDown:        0x28,
	host.KeyPrintScreen: 0x2c,
	host.KeyInsert:      0x2d,
	host.KeyDelete:      0x2e,
	host.KeyLWin:        0x5b,
	host.KeyRWin:        0x5c,
	host.KeyApps:        0x5d,

	host.KeyF1:  0x70,
	host.KeyF2:  0x71,
	host.KeyF3:  0x72,
	host.KeyF4:  0x73,
	host.KeyF5:  0x74,
	host.KeyF6:  0x75,
	host.KeyF7:  0x76,
	host.KeyF8:  0x77,
	host.KeyF9:  0x78,
	host.KeyF10: 0x79,
	host.KeyF11: 0x7a,
	host.KeyF12: 0x7b,

	host.KeyNumLock:    0x90,
	host.KeyScroll:     0x91,
	host.KeyLeftShift:  0xa0,
	host.KeyRightShift: 0xa1,
	host.KeyLeftCtrl:   0xa2,
	host.KeyRightCtrl:  0xa3,
	host.KeyLeftAlt:    0xa4,
	host.KeyRightAlt:   0xa5,
}
