package buffer

import (
	"github.com/matheus3301/keystrip/internal/config"
	"github.com/matheus3301/keystrip/internal/keymap"
)

// template places an entry's icon and label inside its box.
type template func(e *Entry, st config.Style, box Box) []Text

// templates maps every category to its layout. The mapping is total;
// categories without a bespoke layout use genericTemplate.
var templates = map[keymap.Category]template{
	keymap.CategoryNormal:     centeredTemplate,
	keymap.CategoryNumeric:    centeredTemplate,
	keymap.CategorySymbol:     centeredTemplate,
	keymap.CategoryNavigation: centeredTemplate,
	keymap.CategoryFunction:   centeredTemplate,

	keymap.CategoryModifier: modifierTemplate,

	keymap.CategoryScrollable:  cornerTemplate,
	keymap.CategoryEditor:      cornerTemplate,
	keymap.CategoryEscape:      cornerTemplate,
	keymap.CategoryAltFunction: cornerTemplate,
	keymap.CategoryMouse:       cornerTemplate,

	keymap.CategorySpace:   genericTemplate,
	keymap.CategoryUnknown: genericTemplate,
}

// layoutTexts resolves the template for a category, falling back to the
// generic layout so the mapping stays total even if a category is added
// without a bespoke entry.
func layoutTexts(e *Entry, st config.Style, box Box) []Text {
	tpl, ok := templates[e.Category]
	if !ok {
		tpl = genericTemplate
	}
	return tpl(e, st, box)
}

// centeredTemplate puts the label alone in the middle of the box.
func centeredTemplate(e *Entry, st config.Style, box Box) []Text {
	return []Text{{
		X: box.X + box.W/2, Y: box.Y + box.H/2,
		Align: AlignCenter, Size: st.TextSize, Color: st.Fg,
		Content: e.Label,
	}}
}

// modifierTemplate stacks the icon in the top-right corner above a
// right-aligned label.
func modifierTemplate(e *Entry, st config.Style, box Box) []Text {
	var texts []Text
	if e.Icon != "" {
		texts = append(texts, Text{
			X: box.X + box.W - 10, Y: box.Y + 10,
			Align: AlignRightTop, Size: st.IconSize, Color: st.Fg,
			Content: e.Icon,
		})
	}
	return append(texts, Text{
		X: box.X + box.W - 10, Y: box.Y + box.H - 10,
		Align: AlignRightBottom, Size: st.TextSize, Color: st.Fg,
		Content: e.Label,
	})
}

// cornerTemplate centers the icon over the label in the right half of
// the box.
func cornerTemplate(e *Entry, st config.Style, box Box) []Text {
	var texts []Text
	if e.Icon != "" {
		texts = append(texts, Text{
			X: box.X + box.W - 47.5, Y: box.Y + 20,
			Align: AlignCenter, Size: st.IconSize, Color: st.Fg,
			Content: e.Icon,
		})
	}
	return append(texts, Text{
		X: box.X + box.W - 45, Y: box.Y + box.H - 20,
		Align: AlignCenter, Size: st.TextSize, Color: st.Fg,
		Content: e.Label,
	})
}

// genericTemplate centers the icon above the label.
func genericTemplate(e *Entry, st config.Style, box Box) []Text {
	var texts []Text
	if e.Icon != "" {
		texts = append(texts, Text{
			X: box.X + box.W/2, Y: box.Y + 18,
			Align: AlignCenter, Size: st.IconSize, Color: st.Fg,
			Content: e.Icon,
		})
	}
	return append(texts, Text{
		X: box.X + box.W/2, Y: box.Y + box.H - 26,
		Align: AlignCenter, Size: st.TextSize, Color: st.Fg,
		Content: e.Label,
	})
}
