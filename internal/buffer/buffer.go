// Package buffer implements the expiring display buffer that decides which
// recently pressed keys are visible and how they animate.
package buffer

import (
	"time"

	"github.com/matheus3301/keystrip/internal/config"
	"github.com/matheus3301/keystrip/internal/keymap"
)

const (
	// entryTTL is how long an untouched entry stays visible.
	entryTTL = time.Second
	// padding is the horizontal gap charged to each box in the fit pass.
	padding = 8.0
	// refreshAnim is the animation value for new and re-pressed entries;
	// a repeat pops instead of growing from nothing.
	refreshAnim = 0.8
	// animStep is the per-frame growth increment for fitted entries.
	animStep = 0.1
)

// Entry is one visible slot. Anim runs from refreshAnim to 1.0 and only
// advances on passes where the entry fit on screen.
type Entry struct {
	Icon     string
	Label    string
	Anim     float64
	Category keymap.Category
	Touched  time.Time

	// key is the label as pushed, before display normalization. It is
	// the identity used to fold repeats into a refresh.
	key string
}

// StyleSource resolves the current style for a category. The *config.Config
// snapshot satisfies it.
type StyleSource interface {
	StyleFor(keymap.Category) config.Style
}

// Buffer is an ordered sequence of entries, oldest first. It is owned by the
// overlay loop; no method is safe for concurrent use.
type Buffer struct {
	entries []Entry

	now func() time.Time
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{now: time.Now}
}

// Len returns the number of live entries.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// Push inserts a label or refreshes it if it is already visible. A refresh
// keeps the entry's position and resets its animation to the pop value; a
// new label is normalized, split into icon and text, classified, and
// appended at the back. A label that normalizes to empty text still takes a
// slot: filtering zero-length labels is the caller's decision.
func (b *Buffer) Push(label string, mouse bool) {
	for i := range b.entries {
		if b.entries[i].key == label {
			b.entries[i].Touched = b.now()
			b.entries[i].Anim = refreshAnim
			return
		}
	}

	icon, text := keymap.DisplayParts(label, mouse)
	b.entries = append(b.entries, Entry{
		Icon:     icon,
		Label:    text,
		Anim:     refreshAnim,
		Category: keymap.Classify(text),
		Touched:  b.now(),
		key:      label,
	})
}

// TickAndRender advances one frame: it expires old entries, selects the
// most recent entries that fit in maxWidth, advances their animation, and
// returns draw ops laid out left to right with the last entry anchored to
// the right edge. Entries that did not fit are pruned afterwards, so the
// buffer never outgrows the screen.
func (b *Buffer) TickAndRender(maxWidth float64, styles StyleSource) []DrawEntry {
	now := b.now()

	live := b.entries[:0]
	for _, e := range b.entries {
		if now.Sub(e.Touched) < entryTTL {
			live = append(live, e)
		}
	}
	b.entries = live

	// Fit pass: walk backward from the most recent entry, accumulating
	// widths until the budget runs out. Animation advances only for
	// entries selected here.
	var total float64
	fitted := 0
	for i := len(b.entries) - 1; i >= 0; i-- {
		e := &b.entries[i]
		w := styles.StyleFor(e.Category).Width + padding
		if total+w > maxWidth {
			break
		}
		if e.Anim < 1.0 {
			e.Anim = min(e.Anim+animStep, 1.0)
		}
		total += w
		fitted++
	}

	b.entries = b.entries[len(b.entries)-fitted:]

	ops := make([]DrawEntry, 0, fitted)
	x := maxWidth - total
	for i := range b.entries {
		e := &b.entries[i]
		st := styles.StyleFor(e.Category)

		// The box grows from its center as the animation progresses.
		scale := min(e.Anim, 1.0)
		w, h := st.Width*scale, st.Height*scale
		box := Box{
			X:    x + (st.Width-w)/2,
			Y:    (st.Height - h) / 2,
			W:    w,
			H:    h,
			Fill: st.Bg,
		}

		ops = append(ops, DrawEntry{
			Category: e.Category,
			Box:      box,
			Texts:    layoutTexts(e, st, box),
		})
		x += st.Width + padding
	}
	return ops
}
