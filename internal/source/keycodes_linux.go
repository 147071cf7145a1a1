//go:build linux

package source

import "github.com/matheus3301/keystrip/internal/keymap"

// evdevKeys maps Linux KEY_* codes (input-event-codes.h) onto keymap keys.
// Codes outside the table surface as unknown-key transitions.
var evdevKeys = map[uint16]keymap.Key{
	1:  keymap.KeyEscape,
	2:  keymap.Key1,
	3:  keymap.Key2,
	4:  keymap.Key3,
	5:  keymap.Key4,
	6:  keymap.Key5,
	7:  keymap.Key6,
	8:  keymap.Key7,
	9:  keymap.Key8,
	10: keymap.Key9,
	11: keymap.Key0,
	12: keymap.KeyMinus,
	13: keymap.KeyEqual,
	14: keymap.KeyBackspace,
	15: keymap.KeyTab,
	16: keymap.KeyQ,
	17: keymap.KeyW,
	18: keymap.KeyE,
	19: keymap.KeyR,
	20: keymap.KeyT,
	21: keymap.KeyY,
	22: keymap.KeyU,
	23: keymap.KeyI,
	24: keymap.KeyO,
	25: keymap.KeyP,
	26: keymap.KeyLeftBracket,
	27: keymap.KeyRightBracket,
	28: keymap.KeyEnter,
	29: keymap.KeyControlLeft,
	30: keymap.KeyA,
	31: keymap.KeyS,
	32: keymap.KeyD,
	33: keymap.KeyF,
	34: keymap.KeyG,
	35: keymap.KeyH,
	36: keymap.KeyJ,
	37: keymap.KeyK,
	38: keymap.KeyL,
	39: keymap.KeySemicolon,
	40: keymap.KeyQuote,
	41: keymap.KeyBackquote,
	42: keymap.KeyShiftLeft,
	43: keymap.KeyBackslash,
	44: keymap.KeyZ,
	45: keymap.KeyX,
	46: keymap.KeyC,
	47: keymap.KeyV,
	48: keymap.KeyB,
	49: keymap.KeyN,
	50: keymap.KeyM,
	51: keymap.KeyComma,
	52: keymap.KeyDot,
	53: keymap.KeySlash,
	54: keymap.KeyShiftRight,
	55: keymap.KeypadMultiply,
	56: keymap.KeyAlt,
	57: keymap.KeySpace,
	58: keymap.KeyCapsLock,
	59: keymap.KeyF1,
	60: keymap.KeyF2,
	61: keymap.KeyF3,
	62: keymap.KeyF4,
	63: keymap.KeyF5,
	64: keymap.KeyF6,
	65: keymap.KeyF7,
	66: keymap.KeyF8,
	67: keymap.KeyF9,
	68: keymap.KeyF10,
	69: keymap.KeyNumLock,
	70: keymap.KeyScrollLock,
	71: keymap.Keypad7,
	72: keymap.Keypad8,
	73: keymap.Keypad9,
	74: keymap.KeypadMinus,
	75: keymap.Keypad4,
	76: keymap.Keypad5,
	77: keymap.Keypad6,
	78: keymap.KeypadPlus,
	79: keymap.Keypad1,
	80: keymap.Keypad2,
	81: keymap.Keypad3,
	82: keymap.Keypad0,
	83: keymap.KeypadDot,

	87:  keymap.KeyF11,
	88:  keymap.KeyF12,
	96:  keymap.KeypadEnter,
	97:  keymap.KeyControlRight,
	98:  keymap.KeypadDivide,
	99:  keymap.KeyPrintScreen,
	100: keymap.KeyAltGr,
	102: keymap.KeyHome,
	103: keymap.KeyUpArrow,
	104: keymap.KeyPageUp,
	105: keymap.KeyLeftArrow,
	106: keymap.KeyRightArrow,
	107: keymap.KeyEnd,
	108: keymap.KeyDownArrow,
	109: keymap.KeyPageDown,
	110: keymap.KeyInsert,
	111: keymap.KeyDelete,
	113: keymap.KeyMute,
	114: keymap.KeyVolumeDown,
	115: keymap.KeyVolumeUp,
	125: keymap.KeyMetaLeft,
	126: keymap.KeyMetaRight,
	127: keymap.KeyApp,
	155: keymap.KeyMail,
	163: keymap.KeyMediaNext,
	164: keymap.KeyMediaPlay,
	165: keymap.KeyMediaPrev,
	166: keymap.KeyMediaStop,
	172: keymap.KeyWebHome,
	464: keymap.KeyFn,
}
