//go:build linux

package source

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

const (
	evKey = 0x01

	btnLeft   = 0x110
	btnRight  = 0x111
	btnMiddle = 0x112
)

// inputEvent mirrors struct input_event on 64-bit Linux (24 bytes).
type inputEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

// evdevHook reads raw key and button events from every /dev/input/event*
// device. Reading them usually requires membership in the input group.
type evdevHook struct {
	log *zap.Logger
}

// NewHook returns the evdev capture hook.
func NewHook(log *zap.Logger) Hook {
	return &evdevHook{log: log}
}

func (h *evdevHook) Run(ctx context.Context, emit func(Transition)) error {
	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil {
		return fmt.Errorf("listing input devices: %w", err)
	}

	var files []*os.File
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			h.log.Debug("skipping input device", zap.String("device", p), zap.Error(err))
			continue
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		return fmt.Errorf("no readable devices under /dev/input (is the user in the input group?)")
	}
	h.log.Info("reading input devices", zap.Int("devices", len(files)))

	var wg sync.WaitGroup
	for _, f := range files {
		wg.Add(1)
		go func(f *os.File) {
			defer wg.Done()
			h.readDevice(f, emit)
		}(f)
	}

	<-ctx.Done()
	// Closing the files unblocks the readers.
	for _, f := range files {
		_ = f.Close()
	}
	wg.Wait()
	return nil
}

func (h *evdevHook) readDevice(f *os.File, emit func(Transition)) {
	for {
		var ev inputEvent
		if err := binary.Read(f, binary.LittleEndian, &ev); err != nil {
			return
		}
		if ev.Type != evKey {
			continue
		}
		switch ev.Value {
		case 1, 2: // press and auto-repeat both count as down
			emit(downTransition(ev.Code))
		case 0:
			if t, ok := keyTransition(ev.Code, KeyUp); ok {
				emit(t)
			}
		}
	}
}

func downTransition(code uint16) Transition {
	switch code {
	case btnLeft:
		return Transition{Kind: ButtonDown, Button: "Left"}
	case btnRight:
		return Transition{Kind: ButtonDown, Button: "Right"}
	case btnMiddle:
		return Transition{Kind: ButtonDown, Button: "Middle"}
	}
	t, ok := keyTransition(code, KeyDown)
	if !ok {
		return Transition{Kind: KeyDown, Raw: code}
	}
	return t
}

func keyTransition(code uint16, kind TransitionKind) (Transition, bool) {
	k, ok := evdevKeys[code]
	if !ok {
		return Transition{}, false
	}
	return Transition{Kind: kind, Key: k, Raw: code}, true
}
