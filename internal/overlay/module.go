package overlay

import (
	"context"
	"os"

	"github.com/matheus3301/keystrip/internal/bus"
	"github.com/matheus3301/keystrip/internal/config"
	"github.com/matheus3301/keystrip/internal/keymap"
	"github.com/matheus3301/keystrip/internal/lock"
	"github.com/matheus3301/keystrip/internal/logging"
	"github.com/matheus3301/keystrip/internal/source"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Params holds the resolved command line options passed to the fx module.
type Params struct {
	ConfigPath string
	Local      bool // capture terminal keys instead of installing a global hook
}

// Module returns the fx module for the overlay, composing all providers and
// lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("overlay",
		fx.Supply(p),
		fx.Provide(
			provideLogger,
			provideBus,
			provideConfig,
			provideLock,
			provideLayout,
			provideHook,
			provideListener,
			NewOverlayApp,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideLogger() (*zap.Logger, error) {
	return logging.New(config.LogPath(), zapcore.InfoLevel)
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideConfig(p Params, logger *zap.Logger) (*config.Store, error) {
	path := p.ConfigPath
	if path == "" {
		path = config.Locate()
	}
	if err := config.EnsureExists(path); err != nil {
		return nil, err
	}
	cfg, err := config.Load(path, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("config loaded", zap.String("path", path))
	return config.NewStore(path, cfg), nil
}

func provideLock(logger *zap.Logger) (*lock.Lock, error) {
	dir := config.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	logger.Info("acquiring instance lock", zap.String("dir", dir))
	l, err := lock.Acquire(dir)
	if err != nil {
		return nil, err
	}
	logger.Info("instance lock acquired")
	return l, nil
}

func provideLayout(logger *zap.Logger) keymap.Layout {
	layout := keymap.DetectLayout()
	logger.Info("keyboard layout detected", zap.String("layout", layout.String()))
	return layout
}

func provideHook(logger *zap.Logger) source.Hook {
	return source.NewHook(logger)
}

func provideListener(h source.Hook, layout keymap.Layout, b *bus.Bus, logger *zap.Logger) *source.Listener {
	return source.NewListener(h, layout, b, logger)
}

// NewOverlayApp builds the App from its fx-provided collaborators.
func NewOverlayApp(p Params, b *bus.Bus, store *config.Store, logger *zap.Logger) *App {
	return NewApp(b, store, logger, p.Local)
}

func registerLifecycle(lc fx.Lifecycle, p Params, app *App, lk *lock.Lock, listener *source.Listener, store *config.Store, b *bus.Bus, sd fx.Shutdowner, logger *zap.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := config.Watch(ctx, store, b, logger); err != nil && ctx.Err() == nil {
					logger.Warn("config watcher stopped", zap.Error(err))
				}
			}()

			if !p.Local {
				go listener.Run(ctx)
			}

			// The terminal event loop owns the calling goroutine, so the
			// TUI runs in the background and drives shutdown when it exits.
			go func() {
				if err := app.Run(); err != nil {
					logger.Error("overlay terminated", zap.Error(err))
				}
				_ = sd.Shutdown()
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			app.Stop()
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			if n := b.Dropped(); n > 0 {
				logger.Warn("bus dropped events", zap.Uint64("count", n))
			}
			logger.Info("overlay stopped")
			return nil
		},
	})
}
