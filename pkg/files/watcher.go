package files

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"pkt.systems/pslog"

	"github.com/pluqqy/pagetabs/pkg/models"
)

// settleDelay coalesces the burst of events editors produce on save.
const settleDelay = 150 * time.Millisecond

// SettingsWatcher reloads the settings file when it changes on disk.
type SettingsWatcher struct {
	path      string
	fsWatcher *fsnotify.Watcher
	updates   chan *models.Settings
	log       pslog.Logger
}

// NewSettingsWatcher watches the directory holding path. Watching the
// directory keeps working across editors that replace the file on save.
func NewSettingsWatcher(path string, log pslog.Logger) (*SettingsWatcher, error) {
	path = ResolveSettingsPath(path)

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	return &SettingsWatcher{
		path:      filepath.Clean(path),
		fsWatcher: fsWatcher,
		updates:   make(chan *models.Settings, 1),
		log:       log.With("settings", path),
	}, nil
}

// Updates delivers freshly loaded settings after each change.
func (w *SettingsWatcher) Updates() <-chan *models.Settings {
	return w.updates
}

// Run processes file events until ctx is cancelled. It closes the updates
// channel and the underlying watcher on return.
func (w *SettingsWatcher) Run(ctx context.Context) {
	defer close(w.updates)
	defer w.fsWatcher.Close()

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Trace("settings event", "op", event.Op.String())
			settle = time.After(settleDelay)

		case <-settle:
			settle = nil
			settings, err := ReadSettings(w.path)
			if err != nil {
				w.log.Warn("settings reload failed", "err", err)
				continue
			}
			w.log.Info("settings reloaded")
			select {
			case w.updates <- settings:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("settings watcher error", "err", err)
		}
	}
}
