package keymap

import "testing"

func TestResolvePhysical(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyA, "A"},
		{KeyZ, "Z"},
		{Key0, "0"},
		{Key9, "9"},
		{Keypad7, "7"},
		{KeypadPlus, "+"},
		{KeypadDot, "Dot"},
		{KeyF1, "F1"},
		{KeyF12, "F12"},
		{KeyShiftRight, "⇧ shift"},
		{KeyControlLeft, "⌃ control"},
		{KeySpace, "Space"},
		{KeyBackquote, "BackQuote"},
		{KeyDot, "Period"},
		{KeyPageUp, "PageUp"},
		{KeyVolumeUp, "󰝝 vol+"},
		{KeyMediaPlay, "󰐎 play"},
		{KeyNumLock, "NumLock"},
	}
	for _, tt := range tests {
		if got := ResolvePhysical(tt.key); got != tt.want {
			t.Errorf("ResolvePhysical(%d) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestResolvePhysicalTotal(t *testing.T) {
	// Every key in the physical set must produce a non-empty label.
	for k := KeyA; k <= KeyApp; k++ {
		if label := ResolvePhysical(k); label == "" {
			t.Errorf("ResolvePhysical(%d) returned empty label", k)
		}
	}
}

func TestUnknownLabel(t *testing.T) {
	if got := UnknownLabel(172); got != "󰘳 unknown(172)" {
		t.Errorf("UnknownLabel(172) = %q", got)
	}
}
