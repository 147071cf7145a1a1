package keymap

import "fmt"

// Layout is a keyboard locale identifier using the Windows input-language
// convention (low word of the HKL). Layouts other than the two reference
// layouts resolve shifted symbols as United States.
type Layout uint16

const (
	LayoutUS Layout = 0x0409
	LayoutUK Layout = 0x0809
)

// String returns a readable layout name.
func (l Layout) String() string {
	switch l {
	case LayoutUS:
		return "us"
	case LayoutUK:
		return "uk"
	default:
		return fmt.Sprintf("other(0x%04x)", uint16(l))
	}
}

// ResolveShifted returns the display label produced by a key while Shift is
// held, for the given layout. Keys outside the layout's shift table delegate
// to the normalized unshifted label.
func ResolveShifted(k Key, layout Layout) string {
	if layout == LayoutUK {
		return resolveShiftedUK(k)
	}
	return resolveShiftedUS(k)
}

func resolveShiftedUS(k Key) string {
	switch k {
	case Key1:
		return "!"
	case Key2:
		return "@"
	case Key3:
		return "#"
	case Key4:
		return "$"
	case Key5:
		return "%"
	case Key6:
		return "^"
	case Key7:
		return "&"
	case Key8:
		return "*"
	case Key9:
		return "("
	case Key0:
		return ")"
	case KeyMinus:
		return "_"
	case KeyEqual:
		return "+"
	case KeyBackquote:
		return "~"
	case KeyQuote:
		return "\""
	case KeyBackslash:
		return "|"
	default:
		return NormalizeKey(ResolvePhysical(k))
	}
}

func resolveShiftedUK(k Key) string {
	switch k {
	case Key1:
		return "!"
	case Key2:
		return "\""
	case Key3:
		return "£"
	case Key4:
		return "$"
	case Key5:
		return "%"
	case Key6:
		return "^"
	case Key7:
		return "&"
	case Key8:
		return "*"
	case Key9:
		return "("
	case Key0:
		return ")"
	case KeyMinus:
		return "_"
	case KeyEqual:
		return "+"
	case KeyQuote:
		return "\""
	case KeyBackslash:
		return "|"
	default:
		return NormalizeKey(ResolvePhysical(k))
	}
}
