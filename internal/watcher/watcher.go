// Package watcher re-runs a callback when a transaction source file changes
// on disk. It watches the file's parent directory rather than the file
// itself: editors and exporters typically replace the file via rename, which
// would otherwise drop the watch.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the burst of events a single save produces
// (create + write, or several partial writes) into one callback.
const debounceDelay = 250 * time.Millisecond

// Watcher invokes onChange whenever the watched file is written, created,
// or renamed into place.
type Watcher struct {
	path     string
	onChange func()
	fw       *fsnotify.Watcher
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// New creates a Watcher for the given file path.
func New(path string, onChange func()) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("onChange callback cannot be nil")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	return &Watcher{
		path:     abs,
		onChange: onChange,
		stopCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. It returns once the underlying filesystem watch is
// established; callbacks fire from a background goroutine until Stop.
func (w *Watcher) Start() error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create filesystem watcher: %w", err)
	}

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	w.fw = fw
	w.wg.Add(1)
	go w.run()

	return nil
}

// run consumes filesystem events, filters them down to the watched file, and
// fires the callback after the debounce window closes.
func (w *Watcher) run() {
	defer w.wg.Done()

	var debounce *time.Timer
	var debounceC <-chan time.Time

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(debounceDelay)
				debounceC = debounce.C
			} else {
				debounce.Reset(debounceDelay)
			}

		case <-debounceC:
			debounce = nil
			debounceC = nil
			w.onChange()

		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}

		case <-w.stopCh:
			return
		}
	}
}

// Stop halts the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() error {
	close(w.stopCh)
	var err error
	if w.fw != nil {
		err = w.fw.Close()
	}
	w.wg.Wait()
	if err != nil {
		return fmt.Errorf("failed to close filesystem watcher: %w", err)
	}
	return nil
}
