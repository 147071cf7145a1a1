//go:build !linux && !windows

package source

import (
	"context"

	"go.uber.org/zap"
)

type stubHook struct{}

// NewHook returns a hook that reports ErrUnsupported; the overlay still runs
// and can fall back to terminal input.
func NewHook(*zap.Logger) Hook {
	return stubHook{}
}

func (stubHook) Run(context.Context, func(Transition)) error {
	return ErrUnsupported
}
