package server

import (
	"context"
	"path/filepath"
	"slices"
	"time"

	"github.com/bastiangx/teny/internal/logger"
	"github.com/bastiangx/teny/pkg/engine"
	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the data dir must stay quiet before a reload.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads the engine when lexicon files change on disk.
type Watcher struct {
	holder   *engine.Holder
	dir      string
	log      *log.Logger
	Debounce time.Duration
	// OnReload, if set, runs after every reload attempt.
	OnReload func(error)
}

// NewWatcher watches the data dir or snapshot of the holder's config.
func NewWatcher(holder *engine.Holder) *Watcher {
	dc := holder.Config().Data
	dir := engine.ResolveDataDir(dc.Dir)
	if dc.Snapshot != "" {
		dir = filepath.Dir(dc.Snapshot)
	}
	return &Watcher{holder: holder, dir: dir, log: logger.New("watch"), Debounce: DefaultDebounce}
}

// Dir is the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Run watches until ctx is done. Bursts of writes collapse into one reload.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return err
	}
	w.log.Infof("Watching %s for lexicon changes", w.dir)

	markers := lexicon.MarkerFiles()
	if snap := w.holder.Config().Data.Snapshot; snap != "" {
		markers = append(markers, filepath.Base(snap))
	}

	timer := time.NewTimer(w.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !slices.Contains(markers, filepath.Base(event.Name)) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				w.log.Debugf("Lexicon file changed: %s", event.Name)
				timer.Reset(w.Debounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warnf("Watcher error: %v", err)
		case <-timer.C:
			e, err := w.holder.Reload(nil)
			if err == nil {
				recordLexicon(e.Lexicon())
				lexiconReloads.Inc()
				w.log.Infof("Reloaded lexicon: %d words", e.Lexicon().Dictionary.Len())
			}
			if w.OnReload != nil {
				w.OnReload(err)
			}
		}
	}
}
