// Package fsnotify implements the ports.Watcher interface using github.com/fsnotify/fsnotify.
//
// Only the input directory itself is watched; puzzle inputs are flat
// day_NN.txt files, so subdirectories and every other file name are ignored.
// A file is reported once it has been quiet for the settle delay: each new
// event for the same path pushes its timer back, so a create followed by a
// write reaches the callback once, with the finished content on disk.
package fsnotify

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettleDelay is how long a file must stay untouched before it is reported.
const DefaultSettleDelay = 100 * time.Millisecond

var inputFile = regexp.MustCompile(`^day_\d{2}\.txt$`)

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw     *fsnotify.Watcher
	settle time.Duration
	done   chan struct{}
	wg     sync.WaitGroup // event loop and in-flight callbacks

	mu      sync.Mutex
	pending map[string]*pendingChange
	stopped bool
}

// pendingChange is one path waiting out its settle delay.
type pendingChange struct {
	timer *time.Timer
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithSettleDelay overrides DefaultSettleDelay. Values below 1ms mean 1ms.
func WithSettleDelay(d time.Duration) Option {
	return func(w *Watcher) {
		if d < time.Millisecond {
			d = time.Millisecond
		}
		w.settle = d
	}
}

// NewWatcher creates a new file system watcher.
func NewWatcher(opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fw:      fw,
		settle:  DefaultSettleDelay,
		done:    make(chan struct{}),
		pending: make(map[string]*pendingChange),
	}
	for _, o := range opts {
		o(w)
	}
	return w, nil
}

// Watch starts monitoring dir.
// onChange is called with the absolute path of each settled day_NN.txt file.
func (w *Watcher) Watch(dir string, onChange func(filePath string)) error {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("watch %s: not a directory", absPath)
	}
	if err := w.fw.Add(absPath); err != nil {
		return fmt.Errorf("watch %s: %w", absPath, err)
	}

	w.wg.Add(1)
	go w.loop(onChange)
	return nil
}

func (w *Watcher) loop(onChange func(string)) {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !isInputFile(event.Name) {
				continue
			}
			// Removed inputs have nothing to solve; editors that save by
			// rename still produce a Create for the new file.
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.schedule(event.Name, onChange)
			}

		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Errors are swallowed; fsnotify recovers on its own

		case <-w.done:
			return
		}
	}
}

// schedule (re)starts the settle timer for path.
func (w *Watcher) schedule(path string, onChange func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if pc, ok := w.pending[path]; ok && pc.timer.Stop() {
		pc.timer.Reset(w.settle)
		return
	}
	// Either nothing is pending or the old timer already fired and its
	// callback is waiting on mu; replacing the entry makes that one a no-op.
	pc := &pendingChange{}
	pc.timer = time.AfterFunc(w.settle, func() { w.fire(path, pc, onChange) })
	w.pending[path] = pc
}

func (w *Watcher) fire(path string, pc *pendingChange, onChange func(string)) {
	w.mu.Lock()
	if w.stopped || w.pending[path] != pc {
		w.mu.Unlock()
		return
	}
	delete(w.pending, path)
	w.wg.Add(1)
	w.mu.Unlock()

	defer w.wg.Done()
	onChange(path)
}

// Stop ends monitoring and releases all resources. Pending changes are
// dropped and Stop waits for a running callback to return.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	for path, pc := range w.pending {
		pc.timer.Stop()
		delete(w.pending, path)
	}
	close(w.done)
	w.mu.Unlock()

	err := w.fw.Close()
	w.wg.Wait()
	return err
}

// isInputFile reports whether path names a puzzle input (day_NN.txt).
// Swap files, backups and vim's 4913 never match.
func isInputFile(path string) bool {
	return inputFile.MatchString(filepath.Base(path))
}
