package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/grafana/lintrc/internal/testutils"
	"github.com/grafana/lintrc/internal/watch"
	"github.com/stretchr/testify/require"
)

func TestWatcher(t *testing.T) {
	req := require.New(t)

	dir := t.TempDir()
	watched := filepath.Join(dir, "base.json")
	ignored := filepath.Join(dir, "other.json")

	req.NoError(os.WriteFile(watched, []byte("{}"), 0o600))

	ctx, cancel := context.WithCancel(testutils.NullLoggerContext())
	defer cancel()

	changes := make(chan string, 10)
	watcher, err := watch.NewWatcher(ctx, func(file string) {
		changes <- file
	})
	req.NoError(err)
	req.NoError(watcher.Add(watched))

	done := make(chan struct{})
	go func() {
		watcher.Watch()
		close(done)
	}()

	req.NoError(os.WriteFile(ignored, []byte("{}"), 0o600))
	req.NoError(os.WriteFile(watched, []byte(`{"rules": {}}`), 0o600))

	select {
	case file := <-changes:
		expected, err := filepath.Abs(watched)
		req.NoError(err)
		req.Equal(expected, file)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification received")
	}

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after context cancellation")
	}
}
