package source

import (
	"context"
	"testing"

	"github.com/matheus3301/keystrip/internal/bus"
	"github.com/matheus3301/keystrip/internal/input"
	"github.com/matheus3301/keystrip/internal/keymap"
	"go.uber.org/zap"
)

// fakeHook replays a fixed transition sequence and returns.
type fakeHook struct {
	transitions []Transition
	err         error
}

func (f *fakeHook) Run(_ context.Context, emit func(Transition)) error {
	for _, t := range f.transitions {
		emit(t)
	}
	return f.err
}

func runListener(t *testing.T, layout keymap.Layout, transitions []Transition) []input.Event {
	t.Helper()

	b := bus.New()
	events, cancel := b.Subscribe(input.TopicPrefix, 64)
	defer cancel()

	l := NewListener(&fakeHook{transitions: transitions}, layout, b, zap.NewNop())
	l.Run(context.Background())

	var got []input.Event
	for {
		select {
		case evt := <-events:
			got = append(got, evt.Payload.(input.Event))
		default:
			return got
		}
	}
}

func TestListenerShiftResolution(t *testing.T) {
	got := runListener(t, keymap.LayoutUS, []Transition{
		{Kind: KeyDown, Key: keymap.Key1},
		{Kind: KeyDown, Key: keymap.KeyShiftLeft},
		{Kind: KeyDown, Key: keymap.Key1},
		{Kind: KeyUp, Key: keymap.KeyShiftLeft},
		{Kind: KeyDown, Key: keymap.Key1},
	})

	want := []string{"1", "⇧ shift", "!", "1"}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d: %v", len(got), len(want), got)
	}
	for i, label := range want {
		if got[i].Label != label {
			t.Errorf("event %d label = %q, want %q", i, got[i].Label, label)
		}
		if got[i].Kind != input.KindKeyPress {
			t.Errorf("event %d kind = %v, want key press", i, got[i].Kind)
		}
	}
}

func TestListenerLayout(t *testing.T) {
	got := runListener(t, keymap.LayoutUK, []Transition{
		{Kind: KeyDown, Key: keymap.KeyShiftRight},
		{Kind: KeyDown, Key: keymap.Key3},
	})

	if len(got) != 2 || got[1].Label != "£" {
		t.Fatalf("shifted 3 on uk layout = %v, want £", got)
	}
}

func TestListenerMouse(t *testing.T) {
	got := runListener(t, keymap.LayoutUS, []Transition{
		{Kind: ButtonDown, Button: "Left"},
		{Kind: ButtonDown, Button: "Middle"},
	})

	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[0].Kind != input.KindMouseClick || got[0].Label != "MouseLeft" {
		t.Errorf("first event = %+v, want MouseClick MouseLeft", got[0])
	}
	if got[1].Label != "MouseMiddle" {
		t.Errorf("second label = %q, want MouseMiddle", got[1].Label)
	}
}

func TestListenerUnknownKey(t *testing.T) {
	got := runListener(t, keymap.LayoutUS, []Transition{
		{Kind: KeyDown, Key: keymap.KeyNone, Raw: 250},
	})

	if len(got) != 1 || got[0].Label != keymap.UnknownLabel(250) {
		t.Fatalf("unknown key events = %v, want fallback label", got)
	}
}

func TestListenerKeyUpSilent(t *testing.T) {
	got := runListener(t, keymap.LayoutUS, []Transition{
		{Kind: KeyUp, Key: keymap.KeyA},
		{Kind: KeyUp, Key: keymap.KeyNone, Raw: 99},
	})

	if len(got) != 0 {
		t.Fatalf("key releases produced %v, want no events", got)
	}
}

func TestListenerHookFailure(t *testing.T) {
	b := bus.New()
	l := NewListener(&fakeHook{err: ErrUnsupported}, keymap.LayoutUS, b, zap.NewNop())

	// Must return instead of retrying.
	l.Run(context.Background())
}
