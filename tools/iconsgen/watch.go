// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package iconsgen

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

var _ = fmt.Print

// WatchDebounce is how long Watch waits for changes to settle before
// regenerating.
var WatchDebounce = 150 * time.Millisecond

func add_dirs(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}

// Watch runs the generator once and then again whenever something in the
// source directory changes, until ctx is done. Every run is reported to
// on_run. Failed runs do not stop watching.
func Watch(ctx context.Context, cfg *Config, mode Mode, on_run func(*Result, error)) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err = add_dirs(w, cfg.Source); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cfg.Source, err)
	}
	output, _ := filepath.Abs(cfg.Output)
	log := cfg.logger()
	on_run(Run(cfg, mode))

	timer := time.NewTimer(WatchDebounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if p, _ := filepath.Abs(ev.Name); p == output {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if st, err := os.Stat(ev.Name); err == nil && st.IsDir() {
					if err = add_dirs(w, ev.Name); err != nil {
						log.Warn("failed to watch new directory", "path", ev.Name, "error", err)
					}
				}
			}
			log.Debug("source changed", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(WatchDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("error watching source directory", "error", err)
		case <-timer.C:
			on_run(Run(cfg, mode))
		}
	}
}
