package keymap

import "testing"

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		raw, want string
	}{
		{"Comma", ","},
		{"BackQuote", "'"},
		{"Quote", "#"},
		{"Space", "󱁐 space"},
		{"Return", "󰌑 enter"},
		{"Escape", "󰈆 esc"},
		{"ShiftLeft", "⇧ shift"},
		{"UpArrow", "↑"},
		{"PageDown", "󰞒 pgdn"},
		{"A", "A"},
		{"not-a-key", "not-a-key"},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.raw); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for raw := range keyLabels {
		once := NormalizeKey(raw)
		if twice := NormalizeKey(once); twice != once {
			t.Errorf("NormalizeKey not idempotent for %q: %q -> %q", raw, once, twice)
		}
	}
	for raw := range mouseLabels {
		once := NormalizeMouse(raw)
		if twice := NormalizeMouse(once); twice != once {
			t.Errorf("NormalizeMouse not idempotent for %q: %q -> %q", raw, once, twice)
		}
	}
}

func TestNormalizeMouse(t *testing.T) {
	if got := NormalizeMouse("MouseLeft"); got != "󰍽 left" {
		t.Errorf("NormalizeMouse(MouseLeft) = %q", got)
	}
	if got := NormalizeMouse("MouseBack"); got != "MouseBack" {
		t.Errorf("unrecognized button should pass through, got %q", got)
	}
}

func TestDisplayParts(t *testing.T) {
	tests := []struct {
		label string
		mouse bool
		icon  string
		text  string
	}{
		{"A", false, "", "A"},
		{"KeyA", false, "", "A"},
		{"Num7", false, "", "7"},
		{"ShiftLeft", false, "⇧", "shift"},
		{"⇧ shift", false, "⇧", "shift"},
		{"Space", false, "󱁐", "space"},
		{"F1", false, "", "F1"},
		{"f12", false, "", "F12"},
		{"MouseLeft", true, "󰍽", "left"},
		{"Comma", false, "", ","},
		{"", false, "", ""},
	}
	for _, tt := range tests {
		icon, text := DisplayParts(tt.label, tt.mouse)
		if icon != tt.icon || text != tt.text {
			t.Errorf("DisplayParts(%q, %v) = (%q, %q), want (%q, %q)",
				tt.label, tt.mouse, icon, text, tt.icon, tt.text)
		}
	}
}
