// Package watch notifies about changes made to a set of files.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/grafana/grafana-app-sdk/logging"
	"github.com/grafana/lintrc/internal/logs"
)

// Watcher calls a function whenever one of the watched files is written,
// created, removed or renamed.
//
// The parent directories of the files are watched rather than the files
// themselves, so that files replaced by editors (write to a temporary file,
// then rename) keep being tracked.
type Watcher struct {
	ctx      context.Context //nolint:containedctx
	logger   logging.Logger
	watcher  *fsnotify.Watcher
	files    map[string]struct{}
	onChange func(file string)
}

func NewWatcher(ctx context.Context, onChange func(file string)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		ctx:      ctx,
		logger:   logging.FromContext(ctx).With(slog.String("component", "watcher")),
		watcher:  watcher,
		files:    make(map[string]struct{}),
		onChange: onChange,
	}, nil
}

// Add starts watching the given files.
func (w *Watcher) Add(files ...string) error {
	for _, file := range files {
		absolute, err := filepath.Abs(file)
		if err != nil {
			return err
		}

		w.files[absolute] = struct{}{}

		dir := filepath.Dir(absolute)
		if err := w.watcher.Add(dir); err != nil {
			return err
		}

		w.logger.Debug("Watching file", slog.String("file", absolute))
	}

	return nil
}

// Watch blocks until the context is cancelled or the watcher is closed,
// calling the onChange function for every relevant event.
func (w *Watcher) Watch() {
	defer w.watcher.Close()

	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			absolute, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}

			if _, watched := w.files[absolute]; !watched {
				continue
			}

			w.logger.Debug("File changed", slog.String("file", absolute), slog.String("op", event.Op.String()))
			w.onChange(absolute)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			w.logger.Warn("Watcher error", logs.Err(err))
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
