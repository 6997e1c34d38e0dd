package files

import (
	"io"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Change is a modification of the watched file made by another process, or
// by this one: callers filter their own writes with Controller.Changed.
type Change struct {
	Path    string
	Removed bool
}

// Watcher watches one file. It watches the parent directory so that
// replace-by-rename saves from other programs are seen.
type Watcher struct {
	fsw    *fsnotify.Watcher
	logger *log.Logger

	mu   sync.Mutex
	path string
	dir  string

	changes chan Change
	done    chan struct{}
	wg      sync.WaitGroup
}

func NewWatcher(logger *log.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &IOFailure{Op: "watch", Err: err}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := &Watcher{
		fsw:     fsw,
		logger:  logger,
		changes: make(chan Change, 8),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Watch switches the watched file to path. An empty path stops watching.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if path != "" {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}
	dir := ""
	if path != "" {
		dir = filepath.Dir(path)
	}
	if dir != w.dir {
		if w.dir != "" {
			_ = w.fsw.Remove(w.dir)
		}
		w.dir = ""
		if dir != "" {
			if err := w.fsw.Add(dir); err != nil {
				w.path = ""
				return &IOFailure{Op: "watch", Path: path, Err: err}
			}
			w.dir = dir
		}
	}
	w.path = path
	w.logger.Debug("watching", "path", path)
	return nil
}

// Changes delivers changes of the watched file. It is closed by Close.
func (w *Watcher) Changes() <-chan Change { return w.changes }

// Close stops the watcher and closes Changes.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	close(w.changes)
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "err", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	w.mu.Lock()
	path := w.path
	w.mu.Unlock()

	if path == "" || filepath.Clean(ev.Name) != path {
		return
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return
	}
	c := Change{Path: path, Removed: ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)}
	select {
	case w.changes <- c:
	case <-w.done:
	default:
		// A pending change already tells the reader to re-check the file.
	}
}
