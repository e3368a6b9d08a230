// Package watch re-ingests a followed input file when it changes on disk.
package watch

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrClosed is returned when a Follower is used after Close.
var ErrClosed = errors.New("watch: follower is closed")

// DefaultDebounce coalesces editor write bursts into one reload.
const DefaultDebounce = 250 * time.Millisecond

// Follower watches one file and invokes its callback after each change
// settles. The parent directory is watched so that rename-and-replace
// saves are seen too.
type Follower struct {
	path     string
	fw       *fsnotify.Watcher
	onChange func()
	debounce time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// Follow starts watching path. onChange runs on the watcher goroutine.
func Follow(path string, onChange func()) (*Follower, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	f := &Follower{
		path:     abs,
		fw:       fw,
		onChange: onChange,
		debounce: DefaultDebounce,
	}
	go f.loop()
	return f, nil
}

func (f *Follower) loop() {
	for {
		select {
		case ev, ok := <-f.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != f.path {
				continue
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename) {
				f.trigger()
			}
		case _, ok := <-f.fw.Errors:
			if !ok {
				return
			}
		}
	}
}

func (f *Follower) trigger() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(f.debounce, f.onChange)
}

// Close stops the watcher and cancels any pending callback.
func (f *Follower) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrClosed
	}
	f.closed = true
	if f.timer != nil {
		f.timer.Stop()
	}
	f.mu.Unlock()
	return f.fw.Close()
}
