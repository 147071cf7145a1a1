package overlay

import (
	"strconv"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// terminalKeys maps tcell special keys onto the enumerator-style labels the
// normalizer understands.
var terminalKeys = map[tcell.Key]string{
	tcell.KeyEnter:      "Enter",
	tcell.KeyTab:        "Tab",
	tcell.KeyEscape:     "Escape",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyUp:         "UpArrow",
	tcell.KeyDown:       "DownArrow",
	tcell.KeyLeft:       "LeftArrow",
	tcell.KeyRight:      "RightArrow",
	tcell.KeyHome:       "Home",
	tcell.KeyEnd:        "End",
	tcell.KeyPgUp:       "PageUp",
	tcell.KeyPgDn:       "PageDown",
	tcell.KeyInsert:     "Insert",
	tcell.KeyDelete:     "Delete",
}

// terminalLabel translates a terminal key event into a strip label. The
// terminal never reports raw shift chords, so shifted runes arrive already
// resolved and feed straight through.
func terminalLabel(event *tcell.EventKey) (string, bool) {
	k := event.Key()

	if k == tcell.KeyRune {
		r := event.Rune()
		if r == ' ' {
			return "Space", true
		}
		return string(unicode.ToUpper(r)), true
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return "F" + strconv.Itoa(int(k-tcell.KeyF1)+1), true
	}
	label, ok := terminalKeys[k]
	return label, ok
}
