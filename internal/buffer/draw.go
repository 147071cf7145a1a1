package buffer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/keystrip/internal/keymap"
)

// Align positions a text anchor relative to its X/Y coordinate.
type Align uint8

const (
	AlignCenter Align = iota
	AlignRightTop
	AlignRightBottom
)

// Box is a filled rectangle in overlay units.
type Box struct {
	X, Y float64
	W, H float64
	Fill tcell.Color
}

// Text is a positioned string in overlay units.
type Text struct {
	X, Y    float64
	Align   Align
	Size    float64
	Color   tcell.Color
	Content string
}

// DrawEntry is everything the rendering surface needs to paint one key:
// its background box and the texts placed by the category template.
type DrawEntry struct {
	Category keymap.Category
	Box      Box
	Texts    []Text
}
