package debounce

import (
	"testing"
	"time"
)

func TestAdmitSuppressesDuplicates(t *testing.T) {
	g := NewGate()
	if !g.Admit("A") {
		t.Fatal("first occurrence must be admitted")
	}
	if g.Admit("A") {
		t.Error("duplicate within the window must be dropped")
	}
	if !g.Admit("B") {
		t.Error("distinct label must be admitted")
	}
}

func TestTickClearsWindow(t *testing.T) {
	now := time.Now()
	g := NewGate()
	g.now = func() time.Time { return now }
	g.lastClear = now

	g.Admit("A")

	// Window not yet elapsed: the record survives.
	now = now.Add(200 * time.Millisecond)
	g.Tick()
	if g.Admit("A") {
		t.Error("label admitted again before the window elapsed")
	}

	// Window elapsed: everything ages out at once.
	now = now.Add(100 * time.Millisecond)
	g.Tick()
	if !g.Admit("A") {
		t.Error("label not admitted after the window cleared")
	}
}

func TestTickClearsAllLabelsTogether(t *testing.T) {
	now := time.Now()
	g := NewGate()
	g.now = func() time.Time { return now }
	g.lastClear = now

	g.Admit("A")
	now = now.Add(240 * time.Millisecond)
	g.Admit("B")

	// The clear is wholesale: B ages out with A even though it was
	// recorded moments ago.
	now = now.Add(20 * time.Millisecond)
	g.Tick()
	if !g.Admit("A") || !g.Admit("B") {
		t.Error("wholesale clear must drop every recorded label")
	}
}
