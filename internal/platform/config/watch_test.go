package config_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mwhitaker/statekit/internal/platform/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: info\n")
	writeFile(t, filepath.Join(dir, "local.yaml"), "log:\n  format: json\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 1)
	go func() {
		_ = config.Watch(ctx, slog.New(slog.DiscardHandler), "local", dir, func(cfg *config.Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		})
	}()

	// Give the watcher time to register before the write.
	time.Sleep(100 * time.Millisecond)
	writeFile(t, filepath.Join(dir, "local.yaml"), "log:\n  level: warn\n  format: json\n")

	select {
	case cfg := <-reloaded:
		if cfg.Log.Level != "warn" {
			t.Fatalf("Log.Level = %q after reload, want \"warn\"", cfg.Log.Level)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed after config write")
	}
}

func TestWatch_KeepsLastGoodOnInvalidWrite(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: info\n")
	writeFile(t, filepath.Join(dir, "local.yaml"), "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 4)
	go func() {
		_ = config.Watch(ctx, slog.New(slog.DiscardHandler), "local", dir, func(cfg *config.Config) {
			reloaded <- cfg
		})
	}()

	time.Sleep(100 * time.Millisecond)
	writeFile(t, filepath.Join(dir, "local.yaml"), "log:\n  level: shouting\n")

	select {
	case cfg := <-reloaded:
		t.Fatalf("invalid config must not be delivered, got level %q", cfg.Log.Level)
	case <-time.After(500 * time.Millisecond):
	}
}
