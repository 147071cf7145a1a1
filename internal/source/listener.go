package source

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/matheus3301/keystrip/internal/bus"
	"github.com/matheus3301/keystrip/internal/input"
	"github.com/matheus3301/keystrip/internal/keymap"
	"go.uber.org/zap"
)

// Listener adapts raw hook transitions into input events. It tracks Shift
// state independently of everything else so the label-resolution path is
// consistent for every subsequent key; the flag is atomic because hooks may
// emit from their own threads.
type Listener struct {
	hook   Hook
	layout keymap.Layout
	bus    *bus.Bus
	log    *zap.Logger
	shift  atomic.Bool
}

// NewListener creates a listener publishing onto b. The layout is resolved
// once at startup and never changes for the process lifetime.
func NewListener(hook Hook, layout keymap.Layout, b *bus.Bus, log *zap.Logger) *Listener {
	return &Listener{hook: hook, layout: layout, bus: b, log: log}
}

// Run drives the hook until ctx is cancelled. A hook that fails to install
// is reported once and never retried: the overlay keeps running, the strip
// simply stays empty.
func (l *Listener) Run(ctx context.Context) {
	l.log.Info("input capture starting", zap.String("layout", l.layout.String()))
	err := l.hook.Run(ctx, l.handle)
	if err != nil && ctx.Err() == nil {
		l.log.Error("input capture stopped", zap.Error(err))
		return
	}
	l.log.Info("input capture stopped")
}

func (l *Listener) handle(t Transition) {
	switch t.Kind {
	case KeyDown:
		if isShift(t.Key) {
			// Shift announces itself immediately instead of waiting
			// for the key it modifies.
			l.shift.Store(true)
			l.publish(input.Event{Kind: input.KindKeyPress, Label: "⇧ shift"})
			return
		}
		var label string
		switch {
		case t.Key == keymap.KeyNone:
			label = keymap.UnknownLabel(t.Raw)
		case l.shift.Load():
			label = keymap.ResolveShifted(t.Key, l.layout)
		default:
			label = keymap.ResolvePhysical(t.Key)
		}
		l.publish(input.Event{Kind: input.KindKeyPress, Label: label})

	case KeyUp:
		if isShift(t.Key) {
			l.shift.Store(false)
		}

	case ButtonDown:
		l.publish(input.Event{Kind: input.KindMouseClick, Label: "Mouse" + t.Button})
	}
}

func (l *Listener) publish(e input.Event) {
	l.bus.Publish(bus.Event{Kind: e.Topic(), At: time.Now(), Payload: e})
}

func isShift(k keymap.Key) bool {
	return k == keymap.KeyShiftLeft || k == keymap.KeyShiftRight
}
