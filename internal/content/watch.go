package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceInterval collapses the bursts of events editors emit on save.
const DebounceInterval = 100 * time.Millisecond

// Watch reloads path into s whenever it changes, until ctx is done. A file
// that fails to load or validate leaves the previous content in place.
//
// The parent directory is watched rather than the file so that editors
// replacing the file by rename keep being seen.
func Watch(ctx context.Context, path string, s *Store, log *slog.Logger) error {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("content: watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("content: watch: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("content: watch %s: %w", filepath.Dir(abs), err)
	}

	// A stopped timer whose channel is drained; armed on each event.
	timer := time.NewTimer(time.Hour)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(DebounceInterval)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("content: watcher error", "err", err)
		case <-timer.C:
			c, err := Load(abs)
			if err != nil {
				log.Error("content: reload failed, keeping previous content", "path", abs, "err", err)
				continue
			}
			s.Set(c)
			log.Info("content: reloaded", "path", abs)
		}
	}
}
