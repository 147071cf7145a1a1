package overlay

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/keystrip/internal/buffer"
	"github.com/matheus3301/keystrip/internal/bus"
	"github.com/matheus3301/keystrip/internal/config"
	"github.com/matheus3301/keystrip/internal/debounce"
	"github.com/matheus3301/keystrip/internal/input"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// frameInterval is the render cadence, about 30 frames per second.
const frameInterval = 33 * time.Millisecond

// App is the overlay application shell. A single frame loop owns the
// debounce gate and the display buffer; input arrives through the bus and
// rendering goes through the strip primitive.
type App struct {
	app   *tview.Application
	strip *Strip
	bus   *bus.Bus
	store *config.Store
	log   *zap.Logger

	gate  *debounce.Gate
	buf   *buffer.Buffer
	local bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp creates the overlay application. With local set, terminal
// keystrokes feed the strip directly instead of a global hook.
func NewApp(b *bus.Bus, store *config.Store, log *zap.Logger, local bool) *App {
	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		app:    tview.NewApplication(),
		strip:  NewStrip(),
		bus:    b,
		store:  store,
		log:    log,
		gate:   debounce.NewGate(),
		buf:    buffer.New(),
		local:  local,
		ctx:    ctx,
		cancel: cancel,
	}

	a.app.SetRoot(a.strip, true)
	a.app.SetInputCapture(a.captureKey)
	return a
}

func (a *App) captureKey(event *tcell.EventKey) *tcell.EventKey {
	if a.local {
		// Ctrl+C still quits; everything else becomes strip input.
		if event.Key() == tcell.KeyCtrlC {
			return event
		}
		if label, ok := terminalLabel(event); ok {
			a.bus.Publish(bus.Event{
				Kind:    input.TopicKey,
				At:      time.Now(),
				Payload: input.Event{Kind: input.KindKeyPress, Label: label},
			})
		}
		return nil
	}

	if event.Key() == tcell.KeyEscape || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
		a.app.Stop()
		return nil
	}
	return event
}

// Run starts the frame loop and blocks in the terminal event loop until the
// application stops.
func (a *App) Run() error {
	a.log.Info("overlay running", zap.Bool("local", a.local))
	events, unsubscribe := a.bus.Subscribe(input.TopicPrefix, 256)
	go func() {
		defer unsubscribe()
		a.frameLoop(events)
	}()
	return a.app.Run()
}

func (a *App) frameLoop(events <-chan bus.Event) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.ctx.Done():
			return
		case <-ticker.C:
			a.drain(events)
			a.gate.Tick()

			cfg := a.store.Current()
			width := a.strip.WidthUnits()
			if width <= 0 {
				width = cfg.Window.Size[0]
			}

			ops := a.buf.TickAndRender(width, cfg)
			a.app.QueueUpdateDraw(func() {
				a.strip.SetOps(ops)
			})
		}
	}
}

// drain consumes every event queued since the last frame. Admission goes
// through the debounce gate before the label reaches the buffer.
func (a *App) drain(events <-chan bus.Event) {
	for {
		select {
		case evt := <-events:
			e, ok := evt.Payload.(input.Event)
			if !ok {
				continue
			}
			if a.gate.Admit(e.Label) {
				a.buf.Push(e.Label, e.Kind == input.KindMouseClick)
			}
		default:
			return
		}
	}
}

// Stop shuts the overlay down.
func (a *App) Stop() {
	a.cancel()
	a.app.Stop()
}
