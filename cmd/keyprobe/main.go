// keyprobe captures global input and prints the resolved label and category
// for every event. It is the diagnostic companion to the overlay: when a key
// shows up wrong in the strip, keyprobe shows what the capture layer saw.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matheus3301/keystrip/internal/bus"
	"github.com/matheus3301/keystrip/internal/input"
	"github.com/matheus3301/keystrip/internal/keymap"
	"github.com/matheus3301/keystrip/internal/logging"
	"github.com/matheus3301/keystrip/internal/source"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.NewConsole(zapcore.InfoLevel)
	defer func() { _ = logger.Sync() }()

	b := bus.New()
	events, unsubscribe := b.Subscribe(input.TopicPrefix, 256)
	defer unsubscribe()

	layout := keymap.DetectLayout()
	listener := source.NewListener(source.NewHook(logger), layout, b, logger)

	fmt.Printf("layout: %s\npress keys (ctrl+c to quit)\n", layout)

	go listener.Run(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-events:
			e, ok := evt.Payload.(input.Event)
			if !ok {
				continue
			}
			_, text := keymap.DisplayParts(e.Label, e.Kind == input.KindMouseClick)
			fmt.Printf("%-12s label=%-20q category=%s\n", e.Kind, e.Label, keymap.Classify(text))
		}
	}
}
