//go:build windows

package source

import "github.com/matheus3301/keystrip/internal/keymap"

// vkKeys maps Windows virtual-key codes onto keymap keys. Codes outside the
// table surface as unknown-key transitions.
var vkKeys = map[uint16]keymap.Key{
	0x08: keymap.KeyBackspace,
	0x09: keymap.KeyTab,
	0x0D: keymap.KeyEnter,
	0x14: keymap.KeyCapsLock,
	0x1B: keymap.KeyEscape,
	0x20: keymap.KeySpace,
	0x21: keymap.KeyPageUp,
	0x22: keymap.KeyPageDown,
	0x23: keymap.KeyEnd,
	0x24: keymap.KeyHome,
	0x25: keymap.KeyLeftArrow,
	0x26: keymap.KeyUpArrow,
	0x27: keymap.KeyRightArrow,
	0x28: keymap.KeyDownArrow,
	0x2C: keymap.KeyPrintScreen,
	0x2D: keymap.KeyInsert,
	0x2E: keymap.KeyDelete,

	0x30: keymap.Key0,
	0x31: keymap.Key1,
	0x32: keymap.Key2,
	0x33: keymap.Key3,
	0x34: keymap.Key4,
	0x35: keymap.Key5,
	0x36: keymap.Key6,
	0x37: keymap.Key7,
	0x38: keymap.Key8,
	0x39: keymap.Key9,

	0x41: keymap.KeyA,
	0x42: keymap.KeyB,
	0x43: keymap.KeyC,
	0x44: keymap.KeyD,
	0x45: keymap.KeyE,
	0x46: keymap.KeyF,
	0x47: keymap.KeyG,
	0x48: keymap.KeyH,
	0x49: keymap.KeyI,
	0x4A: keymap.KeyJ,
	0x4B: keymap.KeyK,
	0x4C: keymap.KeyL,
	0x4D: keymap.KeyM,
	0x4E: keymap.KeyN,
	0x4F: keymap.KeyO,
	0x50: keymap.KeyP,
	0x51: keymap.KeyQ,
	0x52: keymap.KeyR,
	0x53: keymap.KeyS,
	0x54: keymap.KeyT,
	0x55: keymap.KeyU,
	0x56: keymap.KeyV,
	0x57: keymap.KeyW,
	0x58: keymap.KeyX,
	0x59: keymap.KeyY,
	0x5A: keymap.KeyZ,

	0x5B: keymap.KeyMetaLeft,
	0x5C: keymap.KeyMetaRight,
	0x5D: keymap.KeyApp,

	0x60: keymap.Keypad0,
	0x61: keymap.Keypad1,
	0x62: keymap.Keypad2,
	0x63: keymap.Keypad3,
	0x64: keymap.Keypad4,
	0x65: keymap.Keypad5,
	0x66: keymap.Keypad6,
	0x67: keymap.Keypad7,
	0x68: keymap.Keypad8,
	0x69: keymap.Keypad9,
	0x6A: keymap.KeypadMultiply,
	0x6B: keymap.KeypadPlus,
	0x6D: keymap.KeypadMinus,
	0x6E: keymap.KeypadDot,
	0x6F: keymap.KeypadDivide,

	0x70: keymap.KeyF1,
	0x71: keymap.KeyF2,
	0x72: keymap.KeyF3,
	0x73: keymap.KeyF4,
	0x74: keymap.KeyF5,
	0x75: keymap.KeyF6,
	0x76: keymap.KeyF7,
	0x77: keymap.KeyF8,
	0x78: keymap.KeyF9,
	0x79: keymap.KeyF10,
	0x7A: keymap.KeyF11,
	0x7B: keymap.KeyF12,

	0x90: keymap.KeyNumLock,
	0x91: keymap.KeyScrollLock,

	0xA0: keymap.KeyShiftLeft,
	0xA1: keymap.KeyShiftRight,
	0xA2: keymap.KeyControlLeft,
	0xA3: keymap.KeyControlRight,
	0xA4: keymap.KeyAlt,
	0xA5: keymap.KeyAltGr,

	0xAC: keymap.KeyWebHome,
	0xAD: keymap.KeyMute,
	0xAE: keymap.KeyVolumeDown,
	0xAF: keymap.KeyVolumeUp,
	0xB0: keymap.KeyMediaNext,
	0xB1: keymap.KeyMediaPrev,
	0xB2: keymap.KeyMediaStop,
	0xB3: keymap.KeyMediaPlay,
	0xB4: keymap.KeyMail,

	0xBA: keymap.KeySemicolon,
	0xBB: keymap.KeyEqual,
	0xBC: keymap.KeyComma,
	0xBD: keymap.KeyMinus,
	0xBE: keymap.KeyDot,
	0xBF: keymap.KeySlash,
	0xC0: keymap.KeyBackquote,
	0xDB: keymap.KeyLeftBracket,
	0xDC: keymap.KeyBackslash,
	0xDD: keymap.KeyRightBracket,
	0xDE: keymap.KeyQuote,
}
