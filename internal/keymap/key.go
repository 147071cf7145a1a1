// Package keymap translates physical key identifiers into display labels and
// classifies labels into visual style categories. Everything in this package
// is a pure function over its inputs and safe to call from any goroutine.
package keymap

import (
	"fmt"
	"strconv"
)

// Key identifies a physical key independent of platform key codes. Platform
// hooks translate their native codes into this set; KeyNone marks a code with
// no mapping.
type Key uint16

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

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	Keypad0
	Keypad1
	Keypad2
	Keypad3
	Keypad4
	Keypad5
	Keypad6
	Keypad7
	Keypad8
	Keypad9
	KeypadPlus
	KeypadMinus
	KeypadMultiply
	KeypadDivide
	KeypadEnter
	KeypadDot

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

	KeyEnter
	KeyTab
	KeyEscape
	KeyBackspace
	KeySpace

	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyAlt
	KeyAltGr
	KeyMetaLeft
	KeyMetaRight
	KeyCapsLock

	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyBackquote
	KeyQuote
	KeyComma
	KeyDot
	KeySlash

	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUpArrow
	KeyDownArrow
	KeyLeftArrow
	KeyRightArrow

	KeyNumLock
	KeyScrollLock
	KeyPrintScreen

	KeyMute
	KeyVolumeDown
	KeyVolumeUp
	KeyMediaNext
	KeyMediaPrev
	KeyMediaStop
	KeyMediaPlay
	KeyWebHome
	KeyMail
	KeyFn
	KeyApp
)

// physicalLabels holds labels for keys whose unshifted display form is not
// derivable from their name: icon-augmented modifiers, media glyphs, and
// numpad keys that collapse onto their digit.
var physicalLabels = map[Key]string{
	KeypadPlus:     "+",
	KeypadMinus:    "-",
	KeypadMultiply: "*",
	KeypadDivide:   "/",
	KeypadEnter:    "Enter",
	KeypadDot:      "Dot",

	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyEscape:    "Escape",
	KeyBackspace: "Backspace",
	KeySpace:     "Space",

	KeyShiftLeft:    "⇧ shift",
	KeyShiftRight:   "⇧ shift",
	KeyControlLeft:  "⌃ control",
	KeyControlRight: "⌃ control",
	KeyAlt:          "⌥ alt",
	KeyAltGr:        "⌥ alt",
	KeyMetaLeft:     " Meta",
	KeyMetaRight:    " Meta",
	KeyCapsLock:     "⇪ Caps",

	KeyMinus: "-",
	KeyEqual: "=",

	KeyMute:       "󰖁 mute",
	KeyVolumeDown: "󰝞 vol-",
	KeyVolumeUp:   "󰝝 vol+",
	KeyMediaNext:  "󰒭 next",
	KeyMediaPrev:  "󰒮 prev",
	KeyMediaStop:  " stop",
	KeyMediaPlay:  "󰐎 play",
	KeyWebHome:    "󰋜 home",
	KeyMail:       " mail",
	KeyFn:         "󰝚 fn",
	KeyApp:        "󰏋 App",
}

// keyNames holds the enumerator-style names for keys that resolve to their
// raw identifier; the normalizer turns these into short display glyphs.
var keyNames = map[Key]string{
	KeyLeftBracket:  "LeftBracket",
	KeyRightBracket: "RightBracket",
	KeyBackslash:    "BackSlash",
	KeySemicolon:    "SemiColon",
	KeyBackquote:    "BackQuote",
	KeyQuote:        "Quote",
	KeyComma:        "Comma",
	KeyDot:          "Period",
	KeySlash:        "Slash",

	KeyInsert:      "Insert",
	KeyDelete:      "Delete",
	KeyHome:        "Home",
	KeyEnd:         "End",
	KeyPageUp:      "PageUp",
	KeyPageDown:    "PageDown",
	KeyUpArrow:     "UpArrow",
	KeyDownArrow:   "DownArrow",
	KeyLeftArrow:   "LeftArrow",
	KeyRightArrow:  "RightArrow",
	KeyNumLock:     "NumLock",
	KeyScrollLock:  "ScrollLock",
	KeyPrintScreen: "PrintScreen",
}

// ResolvePhysical returns the unshifted display label for a physical key.
// It is total: keys without a bespoke mapping fall back to a generic
// identifier so every key produces a renderable label.
func ResolvePhysical(k Key) string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + k - KeyA))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	case k >= Keypad0 && k <= Keypad9:
		return string(rune('0' + k - Keypad0))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	}
	if label, ok := physicalLabels[k]; ok {
		return label
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return UnknownLabel(uint16(k))
}

// UnknownLabel formats a platform key code that has no mapping. The result
// is still a renderable label, per the no-error fallback policy.
func UnknownLabel(code uint16) string {
	return fmt.Sprintf("󰘳 unknown(%d)", code)
}
