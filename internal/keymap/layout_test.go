package keymap

import "testing"

func TestResolveShiftedUS(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{Key1, "!"},
		{Key2, "@"},
		{Key3, "#"},
		{Key9, "("},
		{Key0, ")"},
		{KeyMinus, "_"},
		{KeyEqual, "+"},
		{KeyBackquote, "~"},
		{KeyQuote, "\""},
		{KeyBackslash, "|"},
		// Outside the shift table: normalized unshifted label.
		{KeyA, "A"},
		{KeyComma, ","},
		{KeyEnter, "󰌑 enter"},
	}
	for _, tt := range tests {
		if got := ResolveShifted(tt.key, LayoutUS); got != tt.want {
			t.Errorf("ResolveShifted(%d, us) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestResolveShiftedUK(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{Key2, "\""},
		{Key3, "£"},
		{Key4, "$"},
		{KeyQuote, "\""},
		{KeyBackslash, "|"},
		// UK has no backquote shift entry; it falls through to the
		// normalized name.
		{KeyBackquote, "'"},
	}
	for _, tt := range tests {
		if got := ResolveShifted(tt.key, LayoutUK); got != tt.want {
			t.Errorf("ResolveShifted(%d, uk) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestResolveShiftedOtherLayoutBehavesAsUS(t *testing.T) {
	other := Layout(0x040c)
	if got := ResolveShifted(Key2, other); got != "@" {
		t.Errorf("ResolveShifted(Key2, other) = %q, want %q", got, "@")
	}
}

func TestLayoutString(t *testing.T) {
	if LayoutUS.String() != "us" || LayoutUK.String() != "uk" {
		t.Error("reference layout names wrong")
	}
	if got := Layout(0x040c).String(); got != "other(0x040c)" {
		t.Errorf("Layout other String() = %q", got)
	}
}
