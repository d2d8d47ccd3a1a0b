package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	tt "github.com/pseudolang/plin/internal/types"
)

// debounce window after a write event; editors often fire several events
// for one save.
const writeSettle = 100 * time.Millisecond

// Watcher re-runs the check pipeline whenever a watched pseudo-code file
// changes.
type Watcher struct {
	engine   *Engine
	logger   *zap.Logger
	watcher  *fsnotify.Watcher
	report   func(filename string, results []tt.Result)
	watching atomic.Bool
}

// NewWatcher wraps an engine with filesystem watching. The report callback
// receives the results of each re-check.
func NewWatcher(engine *Engine, logger *zap.Logger, report func(string, []tt.Result)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}
	return &Watcher{
		engine:  engine,
		logger:  logger,
		watcher: fsw,
		report:  report,
	}, nil
}

// Watch registers the given files or directories (recursively) and starts
// the event loop.
func (w *Watcher) Watch(paths ...string) error {
	if w.watching.Load() {
		return fmt.Errorf("already watching")
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("error accessing %s: %w", path, err)
		}
		if !info.IsDir() {
			if err := w.watcher.Add(path); err != nil {
				return fmt.Errorf("error adding %s to watcher: %w", path, err)
			}
			continue
		}
		err = filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fi.IsDir() {
				return w.watcher.Add(p)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding %s to watcher: %w", path, err)
		}
	}

	w.watching.Store(true)
	go w.loop()
	return nil
}

// Stop releases the underlying watcher. Closing it closes the event and
// error channels, which is what ends the loop goroutine.
func (w *Watcher) Stop() error {
	w.watching.Store(false)
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !CheckableFile(event.Name) {
		return
	}
	time.Sleep(writeSettle)
	results, err := w.engine.Run(event.Name)
	if err != nil {
		w.logger.Error("error re-checking file", zap.String("file", event.Name), zap.Error(err))
		return
	}
	w.report(event.Name, results)
}

// CheckableFile reports whether the path has a pseudo-code extension the
// tool processes.
func CheckableFile(path string) bool {
	switch filepath.Ext(path) {
	case ".txt", ".pseudo", ".pc":
		return true
	}
	return false
}
