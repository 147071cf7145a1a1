// Package overlay renders the key strip in the terminal and runs the frame
// loop that ties the bus, the debounce gate and the display buffer together.
package overlay

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/keystrip/internal/buffer"
	"github.com/rivo/tview"
)

// Overlay units per terminal cell. A terminal cell is roughly three times
// taller than wide, so the vertical scale compensates to keep the boxes
// close to the configured proportions.
const (
	unitsPerCellX = 10.0
	unitsPerCellY = 30.0
)

// Strip is the tview primitive that paints draw ops produced by the display
// buffer. SetOps is called from the frame loop via QueueUpdateDraw; the last
// drawn width is published so the loop can size the fit pass.
type Strip struct {
	*tview.Box

	mu  sync.Mutex
	ops []buffer.DrawEntry

	// width is the inner width in overlay units from the last draw,
	// stored as float bits. Zero before the first frame.
	width atomic.Uint64
}

// NewStrip creates an empty strip.
func NewStrip() *Strip {
	b := tview.NewBox().SetBackgroundColor(tcell.ColorDefault)
	return &Strip{Box: b}
}

// SetOps replaces the draw ops painted on the next frame.
func (s *Strip) SetOps(ops []buffer.DrawEntry) {
	s.mu.Lock()
	s.ops = ops
	s.mu.Unlock()
}

// WidthUnits returns the drawable width in overlay units, 0 until the strip
// has drawn at least once.
func (s *Strip) WidthUnits() float64 {
	return math.Float64frombits(s.width.Load())
}

// Draw implements tview.Primitive.
func (s *Strip) Draw(screen tcell.Screen) {
	s.Box.DrawForSubclass(screen, s)
	x, y, w, h := s.GetInnerRect()
	s.width.Store(math.Float64bits(float64(w) * unitsPerCellX))

	s.mu.Lock()
	ops := s.ops
	s.mu.Unlock()

	for _, op := range ops {
		s.drawOp(screen, x, y, w, h, op)
	}
}

func (s *Strip) drawOp(screen tcell.Screen, x, y, w, h int, op buffer.DrawEntry) {
	bx := x + cells(op.Box.X, unitsPerCellX)
	by := y + cells(op.Box.Y, unitsPerCellY)
	bw := max(cells(op.Box.W, unitsPerCellX), 1)
	bh := max(cells(op.Box.H, unitsPerCellY), 1)

	fill := tcell.StyleDefault.Background(op.Box.Fill)
	for row := by; row < by+bh; row++ {
		if row < y || row >= y+h {
			continue
		}
		for col := bx; col < bx+bw; col++ {
			if col < x || col >= x+w {
				continue
			}
			screen.SetContent(col, row, ' ', nil, fill)
		}
	}

	for _, t := range op.Texts {
		s.drawText(screen, x, y, w, h, op.Box.Fill, t)
	}
}

func (s *Strip) drawText(screen tcell.Screen, x, y, w, h int, bg tcell.Color, t buffer.Text) {
	runes := []rune(t.Content)
	if len(runes) == 0 {
		return
	}

	col := x + cells(t.X, unitsPerCellX)
	row := y + cells(t.Y, unitsPerCellY)
	switch t.Align {
	case buffer.AlignCenter:
		col -= len(runes) / 2
	case buffer.AlignRightTop, buffer.AlignRightBottom:
		col -= len(runes)
	}
	if row < y || row >= y+h {
		return
	}

	style := tcell.StyleDefault.Foreground(t.Color).Background(bg)
	for i, r := range runes {
		c := col + i
		if c < x || c >= x+w {
			continue
		}
		screen.SetContent(c, row, r, nil, style)
	}
}

func cells(units, perCell float64) int {
	return int(units/perCell + 0.5)
}
