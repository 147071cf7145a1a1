package keymap

import "strings"

// keyLabels maps enumerator-style key names to their short display form.
// Values are never keys of this map, which keeps NormalizeKey idempotent.
var keyLabels = map[string]string{
	"Comma":         ",",
	"Period":        ".",
	"Dot":           ".",
	"SemiColon":     ";",
	"Colon":         ":",
	"BackQuote":     "'",
	"Apostrophe":    "'",
	"Minus":         "-",
	"Equal":         "=",
	"Slash":         "/",
	"BackSlash":     "\\",
	"IntlBackslash": "\\",
	"Grave":         "`",
	"LeftBracket":   "[",
	"RightBracket":  "]",
	"Quote":         "#",
	"Space":         "󱁐 space",
	"Return":        "󰌑 enter",
	"Enter":         "󰌑 enter",
	"Tab":           "Tab",
	"Backspace":     "󰭜 back",
	"Escape":        "󰈆 esc",
	"ShiftLeft":     "⇧ shift",
	"ShiftRight":    "⇧ shift",
	"ControlLeft":   "⌃ control",
	"ControlRight":  "⌃ control",
	"Alt":           "⌥ alt",
	"AltGr":         "⌥ alt",
	"Meta":          "",
	"UpArrow":       "↑",
	"DownArrow":     "↓",
	"LeftArrow":     "←",
	"RightArrow":    "→",
	"Delete":        "⌦ del",
	"Insert":        " ins",
	"Home":          " home",
	"End":           " end",
	"PageUp":        "󰞕 pgup",
	"PageDown":      "󰞒 pgdn",
	"NumLock":       "󰍁 numlock",
	"ScrollLock":    "󰹹 scroll",
	"CapsLock":      "⇪ Caps",
	"PrintScreen":   "󰹑 ps",
}

// mouseLabels maps raw mouse button names to icon-augmented labels.
var mouseLabels = map[string]string{
	"MouseLeft":   "󰍽 left",
	"MouseRight":  "󰍽 right",
	"MouseMiddle": "󰍽 middle",
}

// NormalizeKey maps a verbose key name to its canonical display form.
// Unrecognized input passes through unchanged, so normalizing an already
// normalized label is a no-op.
func NormalizeKey(raw string) string {
	if label, ok := keyLabels[raw]; ok {
		return label
	}
	return raw
}

// NormalizeMouse maps a raw mouse button name to its canonical display form.
// Unrecognized input passes through unchanged.
func NormalizeMouse(raw string) string {
	if label, ok := mouseLabels[raw]; ok {
		return label
	}
	return raw
}

// DisplayParts normalizes a label and splits it into an icon glyph and the
// main text. The split is at the first space; labels without one have an
// empty icon. "Key"/"Num" enumerator prefixes are stripped and function-key
// text is uppercased.
func DisplayParts(label string, mouse bool) (icon, text string) {
	var raw string
	if mouse {
		raw = NormalizeMouse(label)
	} else {
		raw = NormalizeKey(label)
	}

	switch {
	case strings.HasPrefix(raw, "Key") && len(raw) > 3:
		raw = raw[3:]
	case strings.HasPrefix(raw, "Num") && len(raw) == 4 && isDigits(raw[3:]):
		raw = raw[3:]
	}

	if idx := strings.IndexByte(raw, ' '); idx >= 0 {
		icon, text = raw[:idx], raw[idx+1:]
	} else {
		text = raw
	}

	icon = strings.TrimSpace(icon)
	text = strings.TrimSpace(text)

	if strings.HasPrefix(strings.ToLower(text), "f") {
		text = strings.ToUpper(text)
	}
	return icon, text
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
