// Package source captures global key and mouse transitions and turns them
// into input events on the bus. Platform specifics live behind the Hook
// interface; the Listener holds the platform-independent adapter logic.
package source

import (
	"context"
	"errors"

	"github.com/matheus3301/keystrip/internal/keymap"
)

// ErrUnsupported is returned by Run on platforms without a global hook
// implementation.
var ErrUnsupported = errors.New("global input capture is not supported on this platform")

// TransitionKind is the raw transition type a hook reports. Hooks only emit
// these kinds; moves, scrolls and everything else never leave the platform
// layer.
type TransitionKind uint8

const (
	KeyDown TransitionKind = iota
	KeyUp
	ButtonDown
)

// Transition is one raw physical transition. Key is KeyNone when the
// platform code has no mapping; Raw then carries the code for the fallback
// label. Button is the platform button name ("Left", "Right", "Middle").
type Transition struct {
	Kind   TransitionKind
	Key    keymap.Key
	Raw    uint16
	Button string
}

// Hook is the platform capture capability. Run blocks, invoking emit for
// every transition until ctx is cancelled; it returns an error only when
// the hook cannot be installed or dies. emit may be called from any
// goroutine the platform needs.
type Hook interface {
	Run(ctx context.Context, emit func(Transition)) error
}
