package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher notifies when one file changes on disk. fsnotify covers the
// common case; a polling fallback catches filesystems where inotify is
// unreliable (network mounts) and editors that rename-replace.
type Watcher struct {
	path         string
	pollInterval time.Duration
	onChange     func()

	mu      sync.Mutex
	modTime time.Time
	size    int64

	stop chan struct{}
	wg   sync.WaitGroup
}

func New(path string, pollInterval time.Duration, onChange func()) *Watcher {
	return &Watcher{
		path:         filepath.Clean(path),
		pollInterval: pollInterval,
		onChange:     onChange,
		stop:         make(chan struct{}),
	}
}

// Start begins watching with fsnotify + polling fallback. The file may
// not exist yet; its creation counts as a change.
func (w *Watcher) Start() error {
	w.prime()

	// Watch the parent directory: editors replace the file by rename,
	// which drops a watch set on the file itself.
	fsw, err := fsnotify.NewWatcher()
	if err == nil && fsw.Add(filepath.Dir(w.path)) == nil {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for {
				select {
				case event, ok := <-fsw.Events:
					if !ok {
						return
					}
					if filepath.Base(event.Name) != filepath.Base(w.path) {
						continue
					}
					if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
						w.check()
					}
				case <-fsw.Errors:
					// Polling keeps working.
				case <-w.stop:
					fsw.Close()
					return
				}
			}
		}()
	} else if fsw != nil {
		fsw.Close()
	}

	// Polling fallback (always runs as safety net)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.check()
			case <-w.stop:
				return
			}
		}
	}()

	return nil
}

// Stop signals goroutines to exit and waits for them to finish.
func (w *Watcher) Stop() {
	close(w.stop)
	w.wg.Wait()
}

// prime records the current fingerprint so a pre-existing file does not
// fire on start.
func (w *Watcher) prime() {
	info, err := os.Stat(w.path)
	if err != nil {
		return
	}
	w.mu.Lock()
	w.modTime = info.ModTime()
	w.size = info.Size()
	w.mu.Unlock()
}

// check fires onChange when the file's fingerprint moved. Both event
// paths funnel here, so duplicate fsnotify/poll hits coalesce.
func (w *Watcher) check() {
	info, err := os.Stat(w.path)
	if err != nil {
		return
	}

	w.mu.Lock()
	changed := !info.ModTime().Equal(w.modTime) || info.Size() != w.size
	if changed {
		w.modTime = info.ModTime()
		w.size = info.Size()
	}
	w.mu.Unlock()

	if changed {
		w.onChange()
	}
}
