package config

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/keystrip/internal/keymap"
)

// Style holds the visual parameters for one key category. Widths and heights
// are in overlay units; the rendering surface decides how units map onto it.
type Style struct {
	Width    float64
	Height   float64
	IconSize float64
	TextSize float64
	Bg       tcell.Color
	Fg       tcell.Color
}

// FallbackStyle is the fixed style used when a category has no entry at all.
func FallbackStyle() Style {
	return Style{
		Width:    90,
		Height:   90,
		IconSize: 0,
		TextSize: 24,
		Bg:       mustColor("#3c3c3c"),
		Fg:       mustColor("#ffffff"),
	}
}

// DefaultStyles returns the built-in style for every category.
func DefaultStyles() map[keymap.Category]Style {
	s := func(w, h, icon, text float64, bg, fg string) Style {
		return Style{
			Width: w, Height: h,
			IconSize: icon, TextSize: text,
			Bg: mustColor(bg), Fg: mustColor(fg),
		}
	}
	return map[keymap.Category]Style{
		keymap.CategoryNormal:      s(90, 90, 0, 20, "#1e1e30", "#ffffff"),
		keymap.CategoryModifier:    s(120, 90, 25, 18, "#32283c", "#ffffff"),
		keymap.CategoryEditor:      s(90, 90, 18, 22, "#3f2e2e", "#ffffff"),
		keymap.CategoryNavigation:  s(90, 90, 20, 22, "#2e3f2e", "#ffffff"),
		keymap.CategoryScrollable:  s(90, 90, 20, 22, "#2e3f2e", "#ffffff"),
		keymap.CategoryNumeric:     s(90, 90, 0, 24, "#2e2e2e", "#ffffff"),
		keymap.CategorySymbol:      s(90, 90, 20, 24, "#3c2e2e", "#ffffff"),
		keymap.CategorySpace:       s(260, 90, 20, 28, "#888888", "#ffffff"),
		keymap.CategoryEscape:      s(90, 90, 20, 22, "#AA1111", "#ffffff"),
		keymap.CategoryUnknown:     s(90, 90, 14, 22, "#555555", "#ffffff"),
		keymap.CategoryFunction:    s(90, 90, 14, 22, "#001155", "#ffffff"),
		keymap.CategoryAltFunction: s(90, 90, 14, 22, "#004488", "#ffffff"),
		keymap.CategoryMouse:       s(90, 90, 0, 24, "#801155", "#ffffff"),
	}
}

// parseColor converts a "#RRGGBB" string into a color. The second return is
// false for malformed input.
func parseColor(s string) (tcell.Color, bool) {
	cleaned := strings.TrimPrefix(s, "#")
	if len(cleaned) != 6 {
		return tcell.ColorWhite, false
	}
	v, err := strconv.ParseInt(cleaned, 16, 32)
	if err != nil {
		return tcell.ColorWhite, false
	}
	return tcell.NewHexColor(int32(v)), true
}

func mustColor(s string) tcell.Color {
	c, _ := parseColor(s)
	return c
}
