package configwatcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"nurvo_backend/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, level string) {
	t.Helper()
	content := fmt.Sprintf("jwt:\n  secret: watcher-test\nlog:\n  level: %s\n", level)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWatchConfig_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "info")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 1)
	done := make(chan error, 1)
	go func() {
		done <- WatchConfig(ctx, path, func(cfg *config.Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		})
	}()

	deadline := time.After(10 * time.Second)
	for {
		writeConfig(t, path, "warn")
		select {
		case cfg := <-reloaded:
			require.Equal(t, "warn", cfg.Log.Level)
			cancel()
			require.NoError(t, <-done)
			return
		case <-time.After(1500 * time.Millisecond):
		case <-deadline:
			t.Fatal("config was not reloaded")
		}
	}
}
