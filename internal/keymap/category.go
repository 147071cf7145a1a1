package keymap

import (
	"strconv"
	"strings"
)

// Category is the closed set of style groups a label can classify into.
type Category uint8

const (
	CategoryEscape Category = iota
	CategoryNormal
	CategoryNumeric
	CategoryModifier
	CategoryEditor
	CategoryNavigation
	CategoryScrollable
	CategorySpace
	CategorySymbol
	CategoryUnknown
	CategoryFunction
	CategoryAltFunction
	CategoryMouse

	categoryCount
)

var categoryNames = [categoryCount]string{
	CategoryEscape:      "escape",
	CategoryNormal:      "normal",
	CategoryNumeric:     "numeric",
	CategoryModifier:    "modifier",
	CategoryEditor:      "editor",
	CategoryNavigation:  "navigation",
	CategoryScrollable:  "scrollable",
	CategorySpace:       "space",
	CategorySymbol:      "symbol",
	CategoryUnknown:     "unknown",
	CategoryFunction:    "function",
	CategoryAltFunction: "altfunction",
	CategoryMouse:       "mouse",
}

// String returns the category name as used in config style tables.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// Categories returns every category, for exhaustiveness checks and config
// materialization.
func Categories() []Category {
	cats := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		cats = append(cats, c)
	}
	return cats
}

// ParseCategory resolves a config table name to a category.
func ParseCategory(name string) (Category, bool) {
	name = strings.ToLower(name)
	for c := Category(0); c < categoryCount; c++ {
		if categoryNames[c] == name {
			return c, true
		}
	}
	return CategoryUnknown, false
}

// altFunctionKeywords marks media and system keys by substring. Checked only
// after the exact-match branches, so plain "home" stays Scrollable while a
// media "󰋜 home" that reaches this point routes to AltFunction.
var altFunctionKeywords = []string{
	"vol", "mute", "play", "prev", "next", "stop",
	"fn", "web", "mail", "app", "home",
}

// symbolSet is the punctuation reachable from the reference layouts.
const symbolSet = "{}<>|£$%^&_¬#`()@+-=*\\/,.;:!'[]?~\""

// Classify assigns a style category to a normalized display label.
//
// Branch order is load-bearing: exact matches for mouse, escape, modifier,
// editor, arrow, paging and space labels run before the symbol set, the
// function-key pattern, the media keyword scan, and finally the digit/alpha
// fallthroughs. Reordering changes how ambiguous labels like "home" resolve.
func Classify(label string) Category {
	lower := strings.ToLower(label)

	switch lower {
	case "󰍽", "left", "right", "middle":
		return CategoryMouse

	case "meta", "esc", "escape", "󰈆 esc":
		return CategoryEscape

	case "ctrl", "control", "⌃ control", "shift", "⇧ shift",
		"alt", "⌥ alt", "tab", "num", "numlock", "caps":
		return CategoryModifier

	case "󰹑", "ps", "backspace", "delete", "del", "back", "ins", "insert":
		return CategoryEditor

	case "↑", "↓", "←", "→":
		return CategoryNavigation

	case "home", "end", "pageup", "pagedown", "pgup", "pgdn", "scroll", "scrollock":
		return CategoryScrollable

	case "space", "󱁐 space":
		return CategorySpace
	}

	if isSymbol(lower) {
		return CategorySymbol
	}

	if isFunctionKey(lower) {
		return CategoryFunction
	}

	for _, kw := range altFunctionKeywords {
		if strings.Contains(lower, kw) {
			return CategoryAltFunction
		}
	}

	if isDigits(lower) {
		return CategoryNumeric
	}
	if isAlpha(lower) {
		return CategoryNormal
	}
	return CategoryUnknown
}

func isSymbol(s string) bool {
	runes := []rune(s)
	return len(runes) == 1 && strings.ContainsRune(symbolSet, runes[0])
}

// isFunctionKey reports labels of the form f1..f24.
func isFunctionKey(s string) bool {
	if len(s) < 2 || s[0] != 'f' {
		return false
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return false
	}
	return n >= 1 && n <= 24
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return len(s) > 0
}
