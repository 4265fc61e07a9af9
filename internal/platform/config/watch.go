package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch re-loads configuration whenever a YAML file in configDir changes and
// calls onChange with the fresh Config. Reloads that fail validation are
// logged and dropped, keeping the last good configuration in effect.
//
// Watch blocks until ctx is cancelled. Run it on its own goroutine.
func Watch(ctx context.Context, logger *slog.Logger, profile, configDir string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating config watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(configDir); err != nil {
		return fmt.Errorf("watching %s: %w", configDir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Ext(event.Name) != ".yaml" {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := Load(profile, WithConfigDir(configDir))
			if err != nil {
				logger.WarnContext(ctx, "config reload rejected",
					slog.String("file", event.Name),
					slog.String("error", err.Error()),
				)
				continue
			}

			logger.InfoContext(ctx, "config reloaded", slog.String("file", event.Name))
			onChange(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.WarnContext(ctx, "config watcher error", slog.String("error", err.Error()))
		}
	}
}
