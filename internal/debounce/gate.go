// Package debounce collapses duplicate raw input events before they reach
// the display buffer.
package debounce

import "time"

// Window is the suppression interval. All recorded labels age out together
// when the window elapses; there is no per-label timer.
const Window = 250 * time.Millisecond

// Gate suppresses duplicate labels within a coarse time window. It is owned
// by the overlay loop and must not be shared across goroutines.
type Gate struct {
	window    time.Duration
	seen      map[string]struct{}
	lastClear time.Time

	now func() time.Time
}

// NewGate creates a gate with the standard window.
func NewGate() *Gate {
	g := &Gate{
		window: Window,
		seen:   make(map[string]struct{}),
		now:    time.Now,
	}
	g.lastClear = g.now()
	return g
}

// Admit records the label and reports whether it should reach the buffer.
// A label already recorded in the current window is a duplicate to drop.
func (g *Gate) Admit(label string) bool {
	if _, dup := g.seen[label]; dup {
		return false
	}
	g.seen[label] = struct{}{}
	return true
}

// Tick clears the record set wholesale once the window has elapsed. Call it
// once per loop pass, after draining pending events.
func (g *Gate) Tick() {
	now := g.now()
	if now.Sub(g.lastClear) > g.window {
		clear(g.seen)
		g.lastClear = now
	}
}
