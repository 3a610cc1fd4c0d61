package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay lets editors finish atomic writes before the file is re-read.
const reloadDelay = 100 * time.Millisecond

// Watch reloads the catalog at path whenever it changes on disk and passes
// the result to onChange. It blocks until ctx is cancelled. The parent
// directory is watched so rename-over-write saves are picked up.
func Watch(ctx context.Context, path string, onChange func(*Catalog, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve catalog path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch catalog dir: %w", err)
	}

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)
	stopTimer := func() {
		if timer != nil {
			timer.Stop()
		}
	}
	defer stopTimer()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			stopTimer()
			timer = time.NewTimer(reloadDelay)
			timerCh = timer.C
		case <-timerCh:
			timerCh = nil
			cat, err := LoadFile(abs)
			onChange(cat, err)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onChange(nil, fmt.Errorf("watch catalog: %w", err))
		}
	}
}
