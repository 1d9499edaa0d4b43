// Package dropdir watches a directory for files to stage as attachments.
// Dropping a file into the directory while an editor is open stages it on
// the current draft, standing in for drag-and-drop.
package dropdir

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lablog-io/lablog/internal/logging"
)

// FileDrop is a file that appeared in the drop directory and settled.
type FileDrop struct {
	Path     string
	Filename string
	Data     []byte
}

// Watcher watches one drop directory and reports settled files.
type Watcher struct {
	dir        string
	fsWatcher  *fsnotify.Watcher
	dropsChan  chan FileDrop
	done       chan struct{}
	debounce   map[string]*time.Timer
	debounceMu sync.Mutex
}

// New creates a watcher for the given directory. The directory is created
// if it doesn't exist.
func New(dir string) (*Watcher, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		dir:       dir,
		fsWatcher: fsWatcher,
		dropsChan: make(chan FileDrop, 16),
		done:      make(chan struct{}),
		debounce:  make(map[string]*time.Timer),
	}

	return w, nil
}

// Drops returns the channel for receiving settled files.
func (w *Watcher) Drops() <-chan FileDrop {
	return w.dropsChan
}

// Start starts the watcher.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(w.dir); err != nil {
		return err
	}
	go w.processEvents()
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	_ = w.fsWatcher.Close()
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logging.Warn("drop directory watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Accept write, create, and rename events. Rename matters because
	// atomic writes (write tmp, rename to target) produce Rename events
	// on the target file.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return
	}

	// Debounce per path so a file being copied in chunks fires once.
	w.debounceEvent(event.Name, func() {
		w.processFile(event.Name)
	})
}

func (w *Watcher) debounceEvent(path string, fn func()) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}

	w.debounce[path] = time.AfterFunc(200*time.Millisecond, func() {
		w.debounceMu.Lock()
		delete(w.debounce, path)
		w.debounceMu.Unlock()
		fn()
	})
}

func (w *Watcher) processFile(path string) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logging.Warn("failed to read dropped file", "path", path, "error", err)
		return
	}

	logging.Debug("staging dropped file", "path", path, "size", len(data))

	select {
	case w.dropsChan <- FileDrop{Path: path, Filename: filepath.Base(path), Data: data}:
	case <-w.done:
	}
}
