package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned for operations on a closed watcher.
var ErrWatcherClosed = errors.New("watcher closed")

// Operation is the kind of file change.
type Operation int

const (
	// OpWrite indicates the file was modified in place.
	OpWrite Operation = iota

	// OpCreate indicates the file appeared (including rename into place).
	OpCreate

	// OpRemove indicates the file was deleted.
	OpRemove

	// OpRename indicates the file was renamed away.
	OpRename
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Event represents a file change delivered to handlers.
type Event struct {
	// Path is the absolute path of the changed file.
	Path string

	// Op is the operation that triggered the event.
	Op Operation

	// Time is when the change settled.
	Time time.Time
}

// Handler is called when a watched file settles after a change burst.
// Handlers run on a watcher goroutine.
type Handler func(event Event)

// Watcher reports changes to individual files using fsnotify. Parent
// directories are watched under the hood so editor save strategies
// (write in place, rename into place) all surface as changes to the
// tracked file, and tracked files may not exist yet.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration

	mu       sync.Mutex
	files    map[string]bool // absolute tracked file paths
	dirs     map[string]int  // watch refcount per parent directory
	handlers []Handler
	pending  map[string]*pendingChange
	lastErr  error
	closed   bool

	closeCh chan struct{}
	wg      sync.WaitGroup
}

// pendingChange tracks a debounced change to one file.
type pendingChange struct {
	op    Operation
	timer *time.Timer
}

// NewWatcher creates a watcher. Rapid change bursts to one file are
// coalesced within the debounce window; zero or negative selects 100ms.
func NewWatcher(debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		debounce: debounce,
		files:    make(map[string]bool),
		dirs:     make(map[string]int),
		pending:  make(map[string]*pendingChange),
		closeCh:  make(chan struct{}),
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// OnChange registers a handler for settled file changes.
func (w *Watcher) OnChange(handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Watch starts tracking a file. The parent directory must exist; the
// file itself may not, in which case its creation is reported. Watching
// an already-tracked file is a no-op.
func (w *Watcher) Watch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if w.files[absPath] {
		return nil
	}

	dir := filepath.Dir(absPath)
	if w.dirs[dir] == 0 {
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	w.dirs[dir]++
	w.files[absPath] = true
	return nil
}

// Unwatch stops tracking a file.
func (w *Watcher) Unwatch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if !w.files[absPath] {
		return nil
	}

	delete(w.files, absPath)
	dir := filepath.Dir(absPath)
	if w.dirs[dir]--; w.dirs[dir] <= 0 {
		delete(w.dirs, dir)
		_ = w.fsw.Remove(dir)
	}
	return nil
}

// Watched returns the tracked file paths.
func (w *Watcher) Watched() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	paths := make([]string, 0, len(w.files))
	for p := range w.files {
		paths = append(paths, p)
	}
	return paths
}

// Err returns the most recent watch error, if any.
func (w *Watcher) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// Close stops the watcher and cancels pending notifications.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for path, p := range w.pending {
		p.timer.Stop()
		delete(w.pending, path)
	}
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

// processLoop drains fsnotify until closed.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleFSEvent(fsEvent)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.mu.Lock()
			w.lastErr = err
			w.mu.Unlock()
		}
	}
}

// handleFSEvent filters directory noise down to tracked-file changes and
// schedules their debounced delivery.
func (w *Watcher) handleFSEvent(fsEvent fsnotify.Event) {
	op, ok := convertOp(fsEvent.Op)
	if !ok {
		return
	}

	absPath, err := filepath.Abs(fsEvent.Name)
	if err != nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || !w.files[absPath] {
		return
	}

	if p, exists := w.pending[absPath]; exists {
		// A write right after a create is still a create.
		if p.op != OpCreate || op != OpWrite {
			p.op = op
		}
		p.timer.Reset(w.debounce)
		return
	}

	p := &pendingChange{op: op}
	p.timer = time.AfterFunc(w.debounce, func() {
		w.fire(absPath)
	})
	w.pending[absPath] = p
}

// fire delivers a settled change to every handler.
func (w *Watcher) fire(path string) {
	w.mu.Lock()
	p, exists := w.pending[path]
	if !exists || w.closed {
		w.mu.Unlock()
		return
	}
	delete(w.pending, path)
	event := Event{Path: path, Op: p.op, Time: time.Now()}
	handlers := make([]Handler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	for _, handler := range handlers {
		safeCallHandler(handler, event)
	}
}

// safeCallHandler calls a handler with panic recovery.
func safeCallHandler(handler Handler, event Event) {
	defer func() {
		// Recover from panics to keep the watcher running
		_ = recover()
	}()
	handler(event)
}

// convertOp maps an fsnotify operation onto the watcher's vocabulary.
// Chmod-only events are noise for reload purposes.
func convertOp(fsOp fsnotify.Op) (Operation, bool) {
	switch {
	case fsOp.Has(fsnotify.Create):
		return OpCreate, true
	case fsOp.Has(fsnotify.Write):
		return OpWrite, true
	case fsOp.Has(fsnotify.Rename):
		return OpRename, true
	case fsOp.Has(fsnotify.Remove):
		return OpRemove, true
	default:
		return 0, false
	}
}
