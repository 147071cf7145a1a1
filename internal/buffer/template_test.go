package buffer

import (
	"testing"

	"github.com/matheus3301/keystrip/internal/config"
	"github.com/matheus3301/keystrip/internal/keymap"
)

func TestEveryCategoryHasTemplate(t *testing.T) {
	for _, c := range keymap.Categories() {
		if _, ok := templates[c]; !ok {
			t.Errorf("category %v has no render template", c)
		}
	}
}

func TestLayoutTextsFallsBack(t *testing.T) {
	e := &Entry{Icon: "x", Label: "y", Category: keymap.Category(200)}
	box := Box{X: 0, Y: 0, W: 90, H: 90}
	texts := layoutTexts(e, config.FallbackStyle(), box)
	if len(texts) != 2 {
		t.Fatalf("fallback template produced %d texts, want icon + label", len(texts))
	}
}

func TestModifierTemplate(t *testing.T) {
	st := config.DefaultStyles()[keymap.CategoryModifier]
	box := Box{X: 10, Y: 0, W: st.Width, H: st.Height}

	e := &Entry{Icon: "⇧", Label: "shift", Category: keymap.CategoryModifier}
	texts := layoutTexts(e, st, box)
	if len(texts) != 2 {
		t.Fatalf("got %d texts, want 2", len(texts))
	}
	if texts[0].Align != AlignRightTop || texts[0].Content != "⇧" {
		t.Errorf("icon anchor = %+v", texts[0])
	}
	if texts[1].Align != AlignRightBottom || texts[1].Content != "shift" {
		t.Errorf("label anchor = %+v", texts[1])
	}

	// Without an icon only the label is placed.
	bare := &Entry{Label: "tab", Category: keymap.CategoryModifier}
	if got := layoutTexts(bare, st, box); len(got) != 1 {
		t.Errorf("iconless modifier produced %d texts, want 1", len(got))
	}
}

func TestCenteredTemplate(t *testing.T) {
	st := config.DefaultStyles()[keymap.CategoryNormal]
	box := Box{X: 100, Y: 0, W: st.Width, H: st.Height}

	e := &Entry{Label: "A", Category: keymap.CategoryNormal}
	texts := layoutTexts(e, st, box)
	if len(texts) != 1 {
		t.Fatalf("got %d texts, want 1", len(texts))
	}
	if texts[0].X != box.X+box.W/2 || texts[0].Align != AlignCenter {
		t.Errorf("label not centered: %+v", texts[0])
	}
}
