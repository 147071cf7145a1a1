package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/matheus3301/keystrip/internal/bus"
	"go.uber.org/zap"
)

// TopicReloaded is published after a successful hot reload.
const TopicReloaded = "config.reloaded"

// Watch reloads the store's file whenever it changes on disk and publishes
// TopicReloaded on success. A reload that fails to parse keeps the previous
// snapshot. Watch blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file itself: editors that
// write via rename would otherwise silently detach the watch.
func Watch(ctx context.Context, store *Store, b *bus.Bus, log *zap.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	defer w.Close()

	target := filepath.Clean(store.Path())
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch config dir: %w", err)
	}

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load(target, log)
			if err != nil {
				log.Warn("config reload failed, keeping previous", zap.Error(err))
				continue
			}
			store.Replace(cfg)
			log.Info("config reloaded", zap.String("path", target))
			b.Publish(bus.Event{Kind: TopicReloaded})
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("config watcher error", zap.Error(err))
		case <-ctx.Done():
			return nil
		}
	}
}
